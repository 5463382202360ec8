package favorites

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/gateway/api"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/model/external"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

const (
	historyDays    = 4
	forecastWindow = 2
	dateLayout     = "2006-01-02"
)

type favoritesUseCase struct {
	apiGateway api.WeatherGateway
	fanout     int
	now        func() time.Time
}

func NewFavoritesUseCase(apiGateway api.WeatherGateway, fanout int) UseCase {
	return newFavoritesUseCase(apiGateway, fanout, time.Now)
}

func newFavoritesUseCase(apiGateway api.WeatherGateway, fanout int, now func() time.Time) *favoritesUseCase {
	if fanout < 1 {
		fanout = 1
	}
	return &favoritesUseCase{apiGateway: apiGateway, fanout: fanout, now: now}
}

func (uc *favoritesUseCase) AddFavoriteFromProvider(ctx context.Context, store *favorites.Store, location string) (model.WeatherRecord, error) {
	if location == "" {
		return model.WeatherRecord{}, apperr.InvalidArgument(msg.GetMessage("favorites.invalid-location"))
	}

	record, err := uc.fetchCurrent(ctx, location)
	if err != nil {
		return model.WeatherRecord{}, err
	}
	if err := store.Put(location, record); err != nil {
		return model.WeatherRecord{}, err
	}
	return record, nil
}

func (uc *favoritesUseCase) RemoveFavorite(store *favorites.Store, location string) error {
	if !store.Remove(location) {
		return notFound(location)
	}
	log.Info(msg.GetMessage("favorites.removed", location), zap.String("location", location))
	return nil
}

func (uc *favoritesUseCase) GetAllFavorites(store *favorites.Store) ([]string, error) {
	locations := store.Locations()
	if len(locations) == 0 {
		return nil, apperr.EmptyCollection(msg.GetMessage("favorites.empty"))
	}
	return locations, nil
}

// GetFavoriteWeather refreshes the stored record with current conditions.
func (uc *favoritesUseCase) GetFavoriteWeather(ctx context.Context, store *favorites.Store, location string) (model.WeatherRecord, error) {
	if !store.Has(location) {
		return model.WeatherRecord{}, notFound(location)
	}

	record, err := uc.fetchCurrent(ctx, location)
	if err != nil {
		return model.WeatherRecord{}, err
	}
	// The favorite may have been removed during the call; do not resurrect it.
	store.Update(location, record)
	return record, nil
}

// GetFavoriteHistorical fetches the 4 days before today, most recent first.
// One failed day fails the whole report.
func (uc *favoritesUseCase) GetFavoriteHistorical(ctx context.Context, store *favorites.Store, location string) (model.HistoricalReport, error) {
	if !store.Has(location) {
		return nil, notFound(location)
	}
	return uc.historical(ctx, location)
}

func (uc *favoritesUseCase) GetFavoriteNextDayForecast(ctx context.Context, store *favorites.Store, location string) (model.ForecastReport, error) {
	if !store.Has(location) {
		return model.ForecastReport{}, notFound(location)
	}
	return uc.nextDayForecast(ctx, location)
}

func (uc *favoritesUseCase) GetFavoriteAlerts(ctx context.Context, store *favorites.Store, location string) (model.AlertReport, error) {
	if !store.Has(location) {
		return model.AlertReport{}, notFound(location)
	}
	return uc.alerts(ctx, location)
}

func (uc *favoritesUseCase) GetFavoriteCoordinates(ctx context.Context, store *favorites.Store, location string) (model.CoordinateReport, error) {
	if !store.Has(location) {
		return model.CoordinateReport{}, notFound(location)
	}
	return uc.coordinates(ctx, location)
}

// GetAllFavoritesCurrentWeather refreshes every favorite and returns its temperature.
// A failed location carries the provider failure payload.
func (uc *favoritesUseCase) GetAllFavoritesCurrentWeather(ctx context.Context, store *favorites.Store) (map[string]model.Result[float64], error) {
	locations, err := uc.GetAllFavorites(store)
	if err != nil {
		return nil, err
	}

	return fanOut(ctx, uc.fanout, locations, func(ctx context.Context, location string) model.Result[float64] {
		record, err := uc.fetchCurrent(ctx, location)
		if err != nil {
			logFailure(location, err)
			if failure, ok := apperr.AsProviderFailure(err); ok {
				return model.Failed[float64](model.ProviderFailurePayload(failure))
			}
			return model.Failed[float64](model.NewFailure(model.UnhandledException, err.Error()))
		}
		store.Update(location, record)
		return model.Ok(record.Temperature)
	}), nil
}

func (uc *favoritesUseCase) GetAllFavoritesHistorical(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.HistoricalReport], error) {
	return batch(ctx, uc, store, uc.historical)
}

func (uc *favoritesUseCase) GetAllFavoritesNextDayForecast(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.ForecastReport], error) {
	return batch(ctx, uc, store, uc.nextDayForecast)
}

func (uc *favoritesUseCase) GetAllFavoritesAlerts(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.AlertReport], error) {
	return batch(ctx, uc, store, uc.alerts)
}

func (uc *favoritesUseCase) GetAllFavoritesCoordinates(ctx context.Context, store *favorites.Store) (map[string]model.Result[model.CoordinateReport], error) {
	return batch(ctx, uc, store, uc.coordinates)
}

func (uc *favoritesUseCase) fetchCurrent(ctx context.Context, location string) (model.WeatherRecord, error) {
	response, err := uc.apiGateway.GetCurrent(ctx, location)
	if err != nil {
		return model.WeatherRecord{}, err
	}
	return currentRecord(response.Current), nil
}

func (uc *favoritesUseCase) historical(ctx context.Context, location string) (model.HistoricalReport, error) {
	today := uc.now()
	report := make(model.HistoricalReport, historyDays)

	for offset := 1; offset <= historyDays; offset++ {
		date := today.AddDate(0, 0, -offset)
		response, err := uc.apiGateway.GetHistory(ctx, location, date)
		if err != nil {
			return nil, err
		}
		report[date.Format(dateLayout)] = dayRecord(response.Forecast.ForecastDay[0].Day)
	}
	return report, nil
}

// nextDayForecast reads index 1 of a 2-day window, i.e. tomorrow.
func (uc *favoritesUseCase) nextDayForecast(ctx context.Context, location string) (model.ForecastReport, error) {
	response, err := uc.apiGateway.GetForecast(ctx, location, forecastWindow)
	if err != nil {
		return model.ForecastReport{}, err
	}

	days := response.Forecast.ForecastDay
	if len(days) < forecastWindow {
		return model.ForecastReport{}, &apperr.ProviderFailure{Cause: apperr.CauseMalformed, Message: msg.GetMessage("weather.no-forecast")}
	}

	tomorrow := days[1]
	return model.ForecastReport{
		Date:           tomorrow.Date,
		MaxTemperature: tomorrow.Day.MaxTempF,
		MinTemperature: tomorrow.Day.MinTempF,
	}, nil
}

func (uc *favoritesUseCase) alerts(ctx context.Context, location string) (model.AlertReport, error) {
	response, err := uc.apiGateway.GetAlerts(ctx, location)
	if err != nil {
		return model.AlertReport{}, err
	}
	if response.Alerts == nil || response.Alerts.Alert == nil {
		return model.AlertReport{None: true}, nil
	}

	alerts := make([]map[string]any, 0, len(*response.Alerts.Alert))
	for _, alert := range *response.Alerts.Alert {
		alerts = append(alerts, alert)
	}
	return model.AlertReport{Alerts: alerts}, nil
}

func (uc *favoritesUseCase) coordinates(ctx context.Context, location string) (model.CoordinateReport, error) {
	response, err := uc.apiGateway.GetTimezone(ctx, location)
	if err != nil {
		return model.CoordinateReport{}, err
	}
	return model.CoordinateReport{Latitude: response.Location.Lat, Longitude: response.Location.Lon}, nil
}

// batch runs fetch for every favorite. Failures are tagged UnhandledException.
func batch[T any](ctx context.Context, uc *favoritesUseCase, store *favorites.Store, fetch func(context.Context, string) (T, error)) (map[string]model.Result[T], error) {
	locations, err := uc.GetAllFavorites(store)
	if err != nil {
		return nil, err
	}

	return fanOut(ctx, uc.fanout, locations, func(ctx context.Context, location string) model.Result[T] {
		value, err := fetch(ctx, location)
		if err != nil {
			logFailure(location, err)
			return model.Failed[T](model.NewFailure(model.UnhandledException, err.Error()))
		}
		return model.Ok(value)
	}), nil
}

// fanOut runs fn for each location with at most limit calls in flight.
func fanOut[T any](ctx context.Context, limit int, locations []string, fn func(context.Context, string) model.Result[T]) map[string]model.Result[T] {
	var mu sync.Mutex
	results := make(map[string]model.Result[T], len(locations))

	group := new(errgroup.Group)
	group.SetLimit(limit)
	for _, location := range locations {
		group.Go(func() error {
			result := fn(ctx, location)
			mu.Lock()
			results[location] = result
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	return results
}

func currentRecord(current *external.CurrentDTO) model.WeatherRecord {
	return model.WeatherRecord{
		Temperature:   current.TempF,
		WindSpeed:     current.WindMph,
		Precipitation: current.PrecipIn,
		Humidity:      int(math.Round(current.Humidity)),
	}
}

func dayRecord(day external.DayDTO) model.WeatherRecord {
	return model.WeatherRecord{
		Temperature:   day.AvgTempF,
		WindSpeed:     day.MaxWindMph,
		Precipitation: day.TotalPrecipIn,
		Humidity:      int(math.Round(day.AvgHumidity)),
	}
}

func notFound(location string) error {
	return apperr.NotFound(msg.GetMessage("favorites.not-found", location))
}

func logFailure(location string, err error) {
	log.Warn(msg.GetMessage("weather.provider-failed", location, err.Error()), zap.String("location", location), zap.Error(err))
}
