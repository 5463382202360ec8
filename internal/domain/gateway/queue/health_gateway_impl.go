package queue

import (
	"sort"
	"strconv"
	"sync"

	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/sqs"
)

// QueueHealthGateway reports the account event consumers. The component is UNKNOWN
// while no consumer is registered, which is the case when events are disabled.
type QueueHealthGateway struct {
	workers map[string]*sqs.Worker
	mutex   sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{workers: make(map[string]*sqs.Worker)}
}

func (gateway *QueueHealthGateway) RegisterWorker(name string, worker *sqs.Worker) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *QueueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "account events disabled"},
		}
	}

	names := make([]string, 0, len(gateway.workers))
	for name := range gateway.workers {
		names = append(names, name)
	}
	sort.Strings(names)

	status := model.StatusUp
	details := map[string]string{"consumers": strconv.Itoa(len(names))}
	for _, name := range names {
		health := gateway.workers[name].HealthCheck()
		if health.Status != sqs.StatusUp {
			status = model.StatusDown
		}
		details[name+".status"] = string(health.Status)
		for key, value := range health.Details {
			details[name+"."+key] = value
		}
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
