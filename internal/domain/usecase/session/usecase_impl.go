package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/gateway/cache"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

type sessionUseCase struct {
	registry       *favorites.Registry
	sessionGateway cache.SessionGateway
}

func NewSessionUseCase(registry *favorites.Registry, sessionGateway cache.SessionGateway) UseCase {
	return &sessionUseCase{registry: registry, sessionGateway: sessionGateway}
}

// Login restores the persisted favorites into the user's store. Without a session document an
// empty one is created and the store is left as it is. The store is registered only once the
// session store answered.
func (uc *sessionUseCase) Login(ctx context.Context, userID string) (*favorites.Store, error) {
	session, err := uc.sessionGateway.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if session == nil {
		if _, err := uc.sessionGateway.Create(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		log.Info(msg.GetMessage("session.created", userID), zap.String("user_id", userID))
		return uc.registry.GetOrCreate(userID), nil
	}

	store := uc.registry.GetOrCreate(userID)
	store.Clear()
	store.Load(session.Favorites)
	log.Info(msg.GetMessage("session.restored", userID, len(session.Favorites)), zap.String("user_id", userID))
	return store, nil
}

// Logout saves the store into the existing session document and clears it. A missing document
// is NotFound and the store is kept. Without a store in memory nothing is written, so the saved
// favorites survive a repeated logout or a restart.
func (uc *sessionUseCase) Logout(ctx context.Context, userID string) error {
	store, ok := uc.registry.Get(userID)
	if !ok {
		return uc.notLoggedIn(ctx, userID)
	}

	snapshot := store.Snapshot()
	matched, err := uc.sessionGateway.UpdateFavorites(ctx, userID, snapshot)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if !matched {
		return apperr.NotFound(msg.GetMessage("session.not-found", userID))
	}

	store.Clear()
	uc.registry.Drop(userID)
	log.Info(msg.GetMessage("session.saved", userID, len(snapshot)), zap.String("user_id", userID))
	return nil
}

func (uc *sessionUseCase) notLoggedIn(ctx context.Context, userID string) error {
	session, err := uc.sessionGateway.Find(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return apperr.NotFound(msg.GetMessage("session.not-found", userID))
	}
	return apperr.Unauthorized(msg.GetMessage("error.login-required"))
}

func (uc *sessionUseCase) Store(userID string) (*favorites.Store, bool) {
	return uc.registry.Get(userID)
}

// DeleteSession forgets the user entirely, in memory and in the session store.
func (uc *sessionUseCase) DeleteSession(ctx context.Context, userID string) error {
	uc.registry.Drop(userID)
	if err := uc.sessionGateway.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	log.Info(msg.GetMessage("session.deleted", userID), zap.String("user_id", userID))
	return nil
}

// ExpireIdle logs out every store unused for longer than idleFor and reports how many were expired.
// A user whose document vanished is dropped from memory anyway.
func (uc *sessionUseCase) ExpireIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	expired := 0
	var errs []error

	for _, userID := range uc.registry.Idle(idleFor) {
		err := uc.Logout(ctx, userID)
		if errors.Is(err, apperr.ErrNotFound) {
			uc.registry.Drop(userID)
			err = nil
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		expired++
		log.Info(msg.GetMessage("session.expired", userID), zap.String("user_id", userID))
	}
	return expired, errors.Join(errs...)
}
