package cache

import (
	"context"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/model"
)

// SessionGateway persists session documents between login and logout.
type SessionGateway interface {
	// Find returns nil, nil when the user has no session document.
	Find(ctx context.Context, userID string) (*entity.Session, error)
	// Create stores an empty document unless one already exists.
	Create(ctx context.Context, userID string) (bool, error)
	// UpdateFavorites overwrites the favorites of an existing document. It never creates one.
	UpdateFavorites(ctx context.Context, userID string, favorites map[string]model.WeatherRecord) (bool, error)
	Delete(ctx context.Context, userID string) error
}

type HealthCacheGateway interface {
	Health() model.ComponentHealthStatus
}
