package db

import (
	"context"
	"time"

	"weather-favorites/internal/domain/entity"
)

// UserGateway persists accounts. Soft-deleted users are invisible to every lookup.
type UserGateway interface {
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	// FindByUsername returns nil, nil when no active user has that name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash, salt string) (bool, error)
	SoftDelete(ctx context.Context, username string) (bool, error)
	// PurgeDeleted hard-deletes users soft-deleted before olderThan and returns how many rows went away.
	PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error)
}
