package config

import (
	"errors"
	"os"
	"time"

	"github.com/careerfolio/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitPostgres connects the credential store and migrates the two relational
// tables (users, profiles).
func InitPostgres() (*gorm.DB, error) {
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		return nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(&models.User{}, &models.Profile{}); err != nil {
		return nil, err
	}
	return db, nil
}
