package health

import "weather-favorites/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// Component is anything able to report its own health.
type Component interface {
	Health() model.ComponentHealthStatus
}
