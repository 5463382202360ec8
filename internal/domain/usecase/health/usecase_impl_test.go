package health

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/mocks"
)

func TestCheckHealth(t *testing.T) {
	up := mocks.NewMockHealthGateway(t)
	up.On("Health").Return(model.Up(map[string]string{"message": "UP"}))
	unknown := mocks.NewMockHealthGateway(t)
	unknown.On("Health").Return(model.ComponentHealthStatus{Status: model.StatusUnknown})

	response := NewHealthUseCase(map[string]Component{"database": up, "queue": unknown}).CheckHealth()

	assert.Equal(t, model.StatusUp, response.Status)
	assert.Len(t, response.Components, 2)
	assert.Equal(t, model.StatusUnknown, response.Components["queue"].Status)
}

func TestCheckHealth_AnyDownIsDown(t *testing.T) {
	up := mocks.NewMockHealthGateway(t)
	up.On("Health").Return(model.Up(nil))
	down := mocks.NewMockHealthGateway(t)
	down.On("Health").Return(model.Down(errors.New("connection refused")))

	response := NewHealthUseCase(map[string]Component{"redis": up, "weather": down}).CheckHealth()

	assert.Equal(t, model.StatusDown, response.Status)
	assert.Equal(t, "connection refused", response.Components["weather"].Details["message"])
}
