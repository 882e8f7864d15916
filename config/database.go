package config

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/models"
)

var DB *gorm.DB

// ConnectDatabase opens the configured database: PostgreSQL when
// DATABASE_URL is a postgres DSN, otherwise a local SQLite file.
func ConnectDatabase(cfg *Config) error {
	var err error
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		log.Printf("DATABASE_URL not set, using SQLite database at %s", cfg.SQLitePath)
		DB, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// Migrate auto-migrates the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.OrderStatus{},
		&models.Order{},
		&models.SparePart{},
		&models.Employee{},
	)
}

// Seed creates first-boot data: the five fixed order statuses and, when
// no user exists yet, the initial admin account. Safe to call on every
// start.
func Seed(db *gorm.DB, cfg *Config) error {
	for _, status := range models.DefaultStatuses() {
		var existing models.OrderStatus
		if err := db.Where("id = ?", status.ID).Attrs(status).FirstOrCreate(&existing).Error; err != nil {
			return fmt.Errorf("failed to seed order status %q: %w", status.Name, err)
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Seeded initial admin user %q", cfg.AdminUsername)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
