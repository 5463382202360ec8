package cache

import (
	"context"
	"fmt"
	"time"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/redis"
)

const sessionNamespace = "sessions"

type RedisSessionGateway struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ SessionGateway = (*RedisSessionGateway)(nil)

func NewRedisSessionGateway(client *redis.Client, ttl time.Duration) *RedisSessionGateway {
	return &RedisSessionGateway{client: client, ttl: ttl, now: time.Now}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("%s::%s", sessionNamespace, userID)
}

func (gateway *RedisSessionGateway) Find(ctx context.Context, userID string) (*entity.Session, error) {
	var session entity.Session
	found, err := gateway.client.GetJSON(ctx, sessionKey(userID), &session)
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", userID, err)
	}
	if !found {
		return nil, nil
	}
	if session.Favorites == nil {
		session.Favorites = map[string]model.WeatherRecord{}
	}
	return &session, nil
}

func (gateway *RedisSessionGateway) Create(ctx context.Context, userID string) (bool, error) {
	session := entity.Session{
		UserID:    userID,
		Favorites: map[string]model.WeatherRecord{},
		UpdatedAt: gateway.now().UTC(),
	}
	return gateway.client.SetJSONNX(ctx, sessionKey(userID), session, gateway.ttl)
}

func (gateway *RedisSessionGateway) UpdateFavorites(ctx context.Context, userID string, favorites map[string]model.WeatherRecord) (bool, error) {
	session := entity.Session{
		UserID:    userID,
		Favorites: favorites,
		UpdatedAt: gateway.now().UTC(),
	}
	return gateway.client.SetJSONXX(ctx, sessionKey(userID), session, gateway.ttl)
}

func (gateway *RedisSessionGateway) Delete(ctx context.Context, userID string) error {
	return gateway.client.Delete(ctx, sessionKey(userID))
}
