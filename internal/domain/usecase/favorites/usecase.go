package favorites

import (
	"context"

	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/model"
)

// UseCase refreshes favorites against the weather provider. Single-location operations fail
// with apperr NotFound when the location is not a favorite and return *apperr.ProviderFailure
// when the provider call fails.
type UseCase interface {
	AddFavoriteFromProvider(ctx context.Context, store *favorites.Store, location string) (model.WeatherRecord, error)
	RemoveFavorite(store *favorites.Store, location string) error
	GetAllFavorites(store *favorites.Store) ([]string, error)

	GetFavoriteWeather(ctx context.Context, store *favorites.Store, location string) (model.WeatherRecord, error)
	GetFavoriteHistorical(ctx context.Context, store *favorites.Store, location string) (model.HistoricalReport, error)
	GetFavoriteNextDayForecast(ctx context.Context, store *favorites.Store, location string) (model.ForecastReport, error)
	GetFavoriteAlerts(ctx context.Context, store *favorites.Store, location string) (model.AlertReport, error)
	GetFavoriteCoordinates(ctx context.Context, store *favorites.Store, location string) (model.CoordinateReport, error)

	// Batch operations fail with EmptyCollection before any provider call and degrade per item.
	GetAllFavoritesCurrentWeather(ctx context.Context, store *favorites.Store) (map[string]model.Result[float64], error)
	GetAllFavoritesHistorical(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.HistoricalReport], error)
	GetAllFavoritesNextDayForecast(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.ForecastReport], error)
	GetAllFavoritesAlerts(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.AlertReport], error)
	GetAllFavoritesCoordinates(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.CoordinateReport], error)
}
