package store

import (
	"fmt"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL. TranslateError is on so unique and foreign key
// violations surface as gorm sentinels instead of driver-specific errors.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is not configured")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: false,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates tables, indexes and foreign keys from the model tags.
// Parents are listed before children so constraint targets exist. Safe to
// run against an already-migrated store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.CreditCard{},
		&models.Transaction{},
		&models.Reward{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
