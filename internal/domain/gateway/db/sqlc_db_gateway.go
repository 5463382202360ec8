package db

import (
	"context"
	"database/sql"
	"time"

	"weather-favorites/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.Down(err)
	}

	return model.Up(map[string]string{"driver": "postgres", "message": string(model.StatusUp)})
}
