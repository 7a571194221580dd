package app

import (
	"context"
	"ecowave_backend/internal/config"
	"ecowave_backend/internal/controller"
	"ecowave_backend/internal/repository"
	"ecowave_backend/internal/service"
	"ecowave_backend/pkg/database"
	"ecowave_backend/pkg/logger"
	"ecowave_backend/pkg/monitoring"
	"ecowave_backend/pkg/security"
	"ecowave_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	progression *repository.ProgressionRepository
	report      *repository.ReportRepository
	event       *repository.EventRepository
	education   *repository.EducationRepository
	achievement *repository.AchievementRepository
	leaderboard *repository.LeaderboardRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	progression *service.ProgressionService
	report      *service.ReportService
	event       *service.EventService
	education   *service.EducationService
	leaderboard *service.LeaderboardService
	home        *service.HomeService
	profile     *service.ProfileService
	ai          *service.AIService
	podcast     *service.PodcastService
}

type controllers struct {
	auth      *controller.AuthController
	home      *controller.HomeController
	report    *controller.ReportController
	event     *controller.EventController
	education *controller.EducationController
	profile   *controller.ProfileController
	ai        *controller.AIController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progression: repository.NewProgressionRepository(db),
		report:      repository.NewReportRepository(db),
		event:       repository.NewEventRepository(db),
		education:   repository.NewEducationRepository(db),
		achievement: repository.NewAchievementRepository(db),
		leaderboard: repository.NewLeaderboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.progression = service.NewProgressionService(repos.progression)
	s.report = service.NewReportService(repos.report, s.storage, s.progression)
	s.event = service.NewEventService(repos.event, s.progression)
	s.education = service.NewEducationService(repos.education, s.progression, rdb)
	s.leaderboard = service.NewLeaderboardService(repos.leaderboard, repos.user)
	s.home = service.NewHomeService(repos.user, repos.report, repos.event, s.progression)
	s.profile = service.NewProfileService(repos.user, repos.achievement, s.progression, s.leaderboard)
	s.ai = service.NewAIService(cfg.AI)
	s.podcast = service.NewPodcastService(s.ai, &cfg.Storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		home:      controller.NewHomeController(s.home),
		report:    controller.NewReportController(s.report),
		event:     controller.NewEventController(s.event),
		education: controller.NewEducationController(s.education),
		profile:   controller.NewProfileController(s.profile, s.leaderboard),
		ai:        controller.NewAIController(s.ai, s.podcast),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ecowave-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
