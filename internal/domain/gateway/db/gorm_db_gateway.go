package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"weather-favorites/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.Down(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		return model.Down(err)
	}

	return model.Up(map[string]string{"driver": "gorm", "message": string(model.StatusUp)})
}
