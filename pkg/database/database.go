package database

import (
	"ecowave_backend/internal/config"
	"ecowave_backend/internal/model"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.Report{},
		&model.Event{},
		&model.EventJoin{},
		&model.EducationContent{},
		&model.Achievement{},
		&model.LeaderboardSeed{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalogs(db)

	return db, nil
}

// seedCatalogs 空表时写入静态目录数据，重复启动不再写入
func seedCatalogs(db *gorm.DB) {
	var evCount int64
	db.Model(&model.Event{}).Count(&evCount)
	if evCount == 0 {
		events := []model.Event{
			{UUIDBase: model.UUIDBase{ID: "e1"}, Title: "Great Coastal Cleanup", Description: "Help us clean 5 miles of coastline from plastic debris.", Date: "Mar 15, 2025", Time: "09:00 AM", Location: "Malibu Beach, CA", Organizer: "Green Ocean Foundation", Image: "https://images.unsplash.com/photo-1618477461853-cf6ed80fbe5e?auto=format&fit=crop&q=80&w=800", Participants: 45, MaxParticipants: 100, Difficulty: model.DifficultyModerate},
			{UUIDBase: model.UUIDBase{ID: "e2"}, Title: "Bay Area Microplastic Survey", Description: "Science-focused event to sample water for microplastics.", Date: "Mar 22, 2025", Time: "10:30 AM", Location: "San Francisco Bay", Organizer: "EcoResearch Group", Image: "https://images.unsplash.com/photo-1532996122724-e3c354a0b15b?auto=format&fit=crop&q=80&w=800", Participants: 12, MaxParticipants: 20, Difficulty: model.DifficultyHard},
			{UUIDBase: model.UUIDBase{ID: "e3"}, Title: "Family Fun Shoreline Pick-up", Description: "Perfect for families and children to learn about nature.", Date: "Apr 02, 2025", Time: "11:00 AM", Location: "Newport Beach", Organizer: "Shoreline Watch", Image: "https://images.unsplash.com/photo-1459245330819-1b6d75fbaa35?auto=format&fit=crop&q=80&w=800", Participants: 28, MaxParticipants: 50, Difficulty: model.DifficultyEasy},
			{UUIDBase: model.UUIDBase{ID: "e4"}, Title: "Emergency Oil Spill Cleanup", Description: "Volunteers needed for secondary cleanup efforts.", Date: "Mar 10, 2025", Time: "08:00 AM", Location: "Santa Barbara Coast", Organizer: "Coast Guard Auxiliary", Image: "https://images.unsplash.com/photo-1469122312224-c5846569efe1?auto=format&fit=crop&q=80&w=800", Participants: 88, MaxParticipants: 150, Difficulty: model.DifficultyHard},
		}
		for _, e := range events {
			db.Create(&e)
		}
	}

	var edCount int64
	db.Model(&model.EducationContent{}).Count(&edCount)
	if edCount == 0 {
		contents := []model.EducationContent{
			{UUIDBase: model.UUIDBase{ID: "ed1"}, Title: "Understanding Ocean Plastic Pollution", Description: "A deep dive into how plastics enter our oceans and their impact.", Type: model.ContentArticle, Category: "Environment", Image: "https://images.unsplash.com/photo-1530587191325-3db32d826c18?auto=format&fit=crop&q=80&w=400", Duration: "6 min read", Content: "Long article text..."},
			{UUIDBase: model.UUIDBase{ID: "ed2"}, Title: "How to Conduct a Beach Cleanup", Description: "A step-by-step guide on organizing your own community cleanup.", Type: model.ContentVideo, Category: "Action", Image: "https://images.unsplash.com/photo-1595278069441-2cf29f8005a4?auto=format&fit=crop&q=80&w=400", Duration: "12:45", Content: "Video summary..."},
			{UUIDBase: model.UUIDBase{ID: "ed3"}, Title: "Marine Ecosystem Balance", Description: "Visualizing the delicate interdependencies in our oceans.", Type: model.ContentInfographic, Category: "Education", Image: "https://images.unsplash.com/photo-1518467166778-b88f373ffec7?auto=format&fit=crop&q=80&w=400", Duration: "5 min view", Content: "Infographic detail..."},
			{UUIDBase: model.UUIDBase{ID: "ed4"}, Title: "Coral Reef Conservation", Description: "Why reefs are dying and what we can do to save them.", Type: model.ContentVideo, Category: "Wildlife", Image: "https://images.unsplash.com/photo-1546026423-9d20b795643e?auto=format&fit=crop&q=80&w=400", Duration: "15:20", Content: "Coral reef health..."},
			{UUIDBase: model.UUIDBase{ID: "ed5"}, Title: "Sustainable Fishing Practices", Description: "Guide to choosing seafood that doesn't harm the ocean.", Type: model.ContentArticle, Category: "Consumption", Image: "https://images.unsplash.com/photo-1534818113099-dbe2b2e800ad?auto=format&fit=crop&q=80&w=400", Duration: "8 min read", Content: "Fishing impacts..."},
			{UUIDBase: model.UUIDBase{ID: "ed6"}, Title: "Ocean Pollution Statistics 2025", Description: "Latest data on global marine debris trends.", Type: model.ContentInfographic, Category: "Data", Image: "https://images.unsplash.com/photo-1484291470158-b8f8d608850d?auto=format&fit=crop&q=80&w=400", Duration: "4 min view", Content: "Statistics breakdown..."},
		}
		for _, c := range contents {
			db.Create(&c)
		}
	}

	var acCount int64
	db.Model(&model.Achievement{}).Count(&acCount)
	if acCount == 0 {
		achievements := []model.Achievement{
			{UUIDBase: model.UUIDBase{ID: "ac1"}, Name: "First Report", Description: "Submit your first pollution report", Icon: "📝", Points: 50, EarnedDate: "Jan 20, 2024", Locked: false, Gradient: "from-cyan-400 to-blue-500"},
			{UUIDBase: model.UUIDBase{ID: "ac2"}, Name: "Event Champion", Description: "Attend 5 cleanup events", Icon: "🏆", Points: 100, EarnedDate: "Feb 15, 2024", Locked: false, Gradient: "from-amber-400 to-orange-500"},
			{UUIDBase: model.UUIDBase{ID: "ac3"}, Name: "Knowledge Seeker", Description: "Read 10 educational articles", Icon: "📚", Points: 75, EarnedDate: "Mar 01, 2024", Locked: false, Gradient: "from-emerald-400 to-teal-500"},
			{UUIDBase: model.UUIDBase{ID: "ac4"}, Name: "Weekly Warrior", Description: "7-day active streak", Icon: "⚡", Points: 150, EarnedDate: "Mar 05, 2024", Locked: false, Gradient: "from-purple-400 to-indigo-500"},
			{UUIDBase: model.UUIDBase{ID: "ac5"}, Name: "Pollution Fighter", Description: "Report 5 verified pollution sites", Icon: "🥊", Points: 200, EarnedDate: "Mar 10, 2024", Locked: false, Gradient: "from-red-400 to-pink-500"},
			{UUIDBase: model.UUIDBase{ID: "ac6"}, Name: "Community Leader", Description: "Help 50 people join events", Icon: "🤝", Points: 500, Locked: true, Gradient: "from-gray-300 to-gray-400"},
			{UUIDBase: model.UUIDBase{ID: "ac7"}, Name: "Master Volunteer", Description: "100 hours of volunteer work", Icon: "🎖️", Points: 1000, Locked: true, Gradient: "from-gray-300 to-gray-400"},
			{UUIDBase: model.UUIDBase{ID: "ac8"}, Name: "Eco Legend", Description: "Reach Level 10", Icon: "🌟", Points: 5000, Locked: true, Gradient: "from-gray-300 to-gray-400"},
		}
		for _, a := range achievements {
			db.Create(&a)
		}
	}

	var lbCount int64
	db.Model(&model.LeaderboardSeed{}).Count(&lbCount)
	if lbCount == 0 {
		roster := []model.LeaderboardSeed{
			{Name: "Sarah Green", Avatar: "🌱", Level: 15, Points: 8450},
			{Name: "OceanGuardian", Avatar: "🐳", Level: 12, Points: 6200},
			{Name: "EcoDave", Avatar: "🧔", Level: 10, Points: 5100},
			{Name: "Luna_Sea", Avatar: "🌙", Level: 8, Points: 3900},
			{Name: "Marlin_44", Avatar: "🐟", Level: 7, Points: 3150},
			{Name: "BeachBum88", Avatar: "🏖️", Level: 6, Points: 2800},
		}
		for _, s := range roster {
			db.Create(&s)
		}
	}

	// 演示账号，便于移动端首次联调
	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("ecowave123"), bcrypt.DefaultCost)
		if err == nil {
			joined, _ := time.Parse("2006-01-02", "2024-01-15")
			demo := model.User{
				Name:       "Alex Rivera",
				Email:      "alex@ecowave.org",
				Password:   string(hashed),
				Avatar:     "🌊",
				Points:     1250,
				Level:      3,
				Rank:       12,
				Streak:     5,
				JoinedDate: joined,
			}
			db.Create(&demo)

			activities := []model.Activity{
				{UserID: demo.ID, Kind: model.ActivityReport, Title: "Reported plastic pollution", Context: "Venice Beach", Points: 50, OccurredAt: time.Now().Add(-2 * time.Hour)},
				{UserID: demo.ID, Kind: model.ActivityEvent, Title: "Attended cleanup event", Context: "Coastal Clean 2025", Points: 100, OccurredAt: time.Now().Add(-26 * time.Hour)},
				{UserID: demo.ID, Kind: model.ActivityEducation, Title: "Completed article", Context: "Coral Health 101", Points: 25, OccurredAt: time.Now().Add(-49 * time.Hour)},
			}
			for _, a := range activities {
				db.Create(&a)
			}
		}
	}
}
