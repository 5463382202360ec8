package api

import (
	"context"
	"time"

	"weather-favorites/internal/domain/model"
)

type HealthAPIGateway interface {
	Health() model.ComponentHealthStatus
}

// WeatherHealthGateway probes the provider with a current-weather lookup of a fixed location.
type WeatherHealthGateway struct {
	gateway  WeatherGateway
	location string
	timeout  time.Duration
}

var _ HealthAPIGateway = (*WeatherHealthGateway)(nil)

func NewWeatherHealthGateway(gateway WeatherGateway, location string) *WeatherHealthGateway {
	return &WeatherHealthGateway{gateway: gateway, location: location, timeout: 5 * time.Second}
}

func (h *WeatherHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if _, err := h.gateway.GetCurrent(ctx, h.location); err != nil {
		return model.Down(err)
	}
	return model.Up(map[string]string{"message": string(model.StatusUp), "probe": h.location})
}
