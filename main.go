package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/database"
	"github.com/xyzrestro/food-billing-app/middlewares"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/router"
	"github.com/xyzrestro/food-billing-app/services"
	"github.com/xyzrestro/food-billing-app/utils"
)

func init() {
	// Load .env before anything else reads the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.SeedFoods(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding foods: %v", err)
	}

	if !cfg.EmailConfigured() {
		utils.InfoLogger.Println("Email not configured; bills will skip the email channel.")
	}
	if !cfg.WhatsAppConfigured() {
		utils.InfoLogger.Println("Twilio not configured; bills will skip the WhatsApp channel.")
	}

	dispatcher := services.NewDispatcher(cfg)

	r := router.SetupRouter(db, cfg, dispatcher)

	// General per-IP limiter on top of the stricter one guarding send-bill.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Food{},
		&models.Bill{},
		&models.BillItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
