package health

import (
	"sync"

	"weather-favorites/internal/domain/model"
)

type healthUseCase struct {
	components map[string]Component
}

// NewHealthUseCase checks the named components. A component reporting UNKNOWN does not
// bring the service DOWN.
func NewHealthUseCase(components map[string]Component) UseCase {
	return &healthUseCase{components: components}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	var mu sync.Mutex
	var wg sync.WaitGroup
	statuses := make(map[string]model.ComponentHealthStatus, len(useCase.components))

	for name, component := range useCase.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := component.Health()
			mu.Lock()
			statuses[name] = status
			mu.Unlock()
		}()
	}
	wg.Wait()

	overallStatus := model.StatusUp
	for _, status := range statuses {
		if status.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{Status: overallStatus, Components: statuses}
}
