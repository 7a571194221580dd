package app

import (
	"ecowave_backend/docs"
	"ecowave_backend/internal/config"
	"ecowave_backend/internal/middleware"
	"ecowave_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/home", c.home.GetHome)
		authGroup.GET("/profile", c.profile.GetProfile)
		authGroup.GET("/leaderboard", c.profile.GetLeaderboard)

		authGroup.GET("/reports", c.report.GetMyReports)
		authGroup.POST("/reports", c.report.SubmitReport)

		authGroup.GET("/events", c.event.GetEvents)
		authGroup.POST("/events/:id/toggle", c.event.ToggleJoin)

		authGroup.GET("/education", c.education.GetCatalog)
		authGroup.POST("/education/:id/complete", c.education.CompleteContent)

		ai := authGroup.Group("/ai")
		{
			ai.POST("/chat", c.ai.Chat)
			ai.POST("/simulate", c.ai.Simulate)
			ai.POST("/podcast", c.ai.GeneratePodcast)
		}
	}
}
