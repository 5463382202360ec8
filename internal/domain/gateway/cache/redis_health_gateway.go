package cache

import (
	"context"
	"time"

	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/redis"
)

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthCacheGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := redis.HealthCheck(ctx, gateway.client); err != nil {
		return model.Down(err)
	}
	return model.Up(map[string]string{"address": gateway.client.GetConfig().Addr()})
}
