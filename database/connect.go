package database

import (
	"coach_tracker/config"
	"coach_tracker/model"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store and makes sure both tables exist. The returned
// handle is owned by the caller; there is no package-level connection.
func Connect() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var db *gorm.DB
	var err error
	switch config.Config("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.Config("DB_HOST"), config.Config("DB_PORT"), config.Config("DB_USER"),
			config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		path := config.Config("DB_PATH")
		if path == "" {
			path = "coaches.db"
		}
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the coaches and movements tables if absent. AutoMigrate is
// idempotent, so running it on every start is safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Coach{},
		&model.Movement{},
	)
}
