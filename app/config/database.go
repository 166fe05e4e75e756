package config

import (
	"taskboard/app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the sqlite store at path and returns it.
func InitDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// EnsureSchema creates the user and task tables if absent. Safe to call on
// every startup.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Task{})
}
