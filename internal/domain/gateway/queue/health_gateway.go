package queue

import (
	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/sqs"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker *sqs.Worker)
	UnregisterWorker(name string)
}
