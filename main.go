package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/models"
	"github.com/Mo3az99/aura-shop-reborn/notify"
	"github.com/Mo3az99/aura-shop-reborn/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Init DB
	db := initDatabase(log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Session{},
	); err != nil {
		log.Fatal("AutoMigrate failed", "error", err.Error())
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	notifier := notify.NewFromEnv(log)

	// Setup routes
	routes.SetupRoutes(r, db, log, notifier)

	// Purge expired sessions and their carts at 3 AM daily
	go startDailySessionCleanup(db, log, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("Server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server", "error", err.Error())
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(log *logger.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatal("DB connection failed", "error", err.Error())
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
		log.Fatal("Failed to connect DB", "error", err.Error())
	}
	return db
}

// startDailySessionCleanup deletes expired session rows, and any cart items
// they still own, at a fixed hour each day.
func startDailySessionCleanup(db *gorm.DB, log *logger.Logger, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Info("Next session cleanup scheduled", "at", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		var expired []models.Session
		if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
			log.Error("Failed to list expired sessions", "error", err.Error())
			continue
		}
		for _, s := range expired {
			if err := db.Where("session_id = ?", s.ID).Delete(&models.CartItem{}).Error; err != nil {
				log.Error("Failed to clear expired cart", "session_id", s.ID, "error", err.Error())
				continue
			}
			if err := db.Delete(&s).Error; err != nil {
				log.Error("Failed to delete expired session", "session_id", s.ID, "error", err.Error())
			}
		}
		if len(expired) > 0 {
			log.Info("Expired sessions purged", "count", len(expired))
		}
	}
}
