package api

import (
	"context"
	"time"

	"weather-favorites/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather provider calls.
// Every failure is returned as *apperr.ProviderFailure.
type WeatherGateway interface {
	// GetCurrent returns the current conditions of a location
	GetCurrent(ctx context.Context, location string) (*external.CurrentResponse, error)

	// GetHistory returns the observed weather of a location on the given day
	GetHistory(ctx context.Context, location string, date time.Time) (*external.ForecastResponse, error)

	// GetForecast returns a forecast window of days starting today
	GetForecast(ctx context.Context, location string, days int) (*external.ForecastResponse, error)

	// GetAlerts returns the active alerts of a location
	GetAlerts(ctx context.Context, location string) (*external.AlertsResponse, error)

	// GetTimezone returns the location metadata, including coordinates
	GetTimezone(ctx context.Context, location string) (*external.TimezoneResponse, error)
}
