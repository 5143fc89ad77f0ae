package dbhelper

import (
	"fmt"
	"stylistapi/config"
	"stylistapi/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(300)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)

	for _, model := range []interface{}{
		&models.UserAccount{},
		&models.UserPushToken{},
		&models.Clothing{},
		&models.SavedOutfit{},
	} {
		if err := Migrate(db, model); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// SetupTestDB connects to the local postgres used by the store tests.
func SetupTestDB() (*gorm.DB, error) {
	cfg := config.FromEnv()
	cfg.DBUsername = config.GetEnv("TEST_DB_USERNAME", "stylist")
	cfg.DBPassword = config.GetEnv("TEST_DB_PASSWORD", "stylist")
	cfg.DBName = config.GetEnv("TEST_DB_NAME", "stylist_test")
	return SetupDB(cfg)
}
