package queue

import (
	"context"

	"weather-favorites/internal/domain/entity"
)

// EventPublisher emits account lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.AccountEvent) error
}

// NoopPublisher drops events; used when app.events.enabled is false.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, entity.AccountEvent) error {
	return nil
}
