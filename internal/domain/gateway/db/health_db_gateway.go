package db

import "weather-favorites/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
