package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crm_backend/internal/logging"
	"crm_backend/internal/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.L().Info("Database connected and migrated successfully")
	return db, nil
}

// Migration order matters: referenced tables before referencing ones so
// the SET NULL / CASCADE / RESTRICT foreign keys can be created.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.CallLog{},
		&models.Lead{},
		&models.Order{},
		&models.OrderProduct{},
		&models.Task{},
		&models.ShiftNote{},
		&models.RemarkLog{},
	)
}
