package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SebastianPortocarrero/TFVitanza/cart"
	"github.com/SebastianPortocarrero/TFVitanza/localstore"
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/SebastianPortocarrero/TFVitanza/routes"
	"github.com/SebastianPortocarrero/TFVitanza/seed"
)

func main() {
	log.Println("✅ Starting Vitanza API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.GuestSession{},
		&models.MenuItem{},
		&models.CustomizationRule{},
		&models.CartSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.LoyaltyPoints{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the starter customization rules and challenges
	if err := seed.Run(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Local durable store for anonymous carts and preferences
	localPath := os.Getenv("LOCAL_STORE_PATH")
	if localPath == "" {
		localPath = "vitanza_local.db"
	}
	local, err := localstore.Open(localPath)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	defer local.Close()

	carts := cart.NewManager(cart.NewGormBackend(db), local)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{DB: db, Carts: carts, Local: local})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
