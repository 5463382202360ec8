package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weather-favorites/internal/domain/entity"
)

// Open connects to postgres and, when autoMigrate is set, creates the users table.
func Open(uri string, autoMigrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	if autoMigrate {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			return nil, fmt.Errorf("fail to migrate users: %w", err)
		}
	}
	return db, nil
}
