package session

import (
	"context"
	"time"

	"weather-favorites/internal/domain/favorites"
)

// UseCase bridges the in-memory favorites of a user and the persisted session document.
type UseCase interface {
	Login(ctx context.Context, userID string) (*favorites.Store, error)
	Logout(ctx context.Context, userID string) error
	Store(userID string) (*favorites.Store, bool)
	DeleteSession(ctx context.Context, userID string) error
	ExpireIdle(ctx context.Context, idleFor time.Duration) (int, error)
}
