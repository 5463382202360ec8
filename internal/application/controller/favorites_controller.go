package controller

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"weather-favorites/internal/application/middleware"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/usecase/favorites"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

type FavoritesController struct {
	api            *echo.Group
	useCase        favorites.UseCase
	sessionUseCase session.UseCase
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase, sessionUseCase session.UseCase) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase, sessionUseCase: sessionUseCase}
}

// InitFavoritesRoutes registers every favorites route behind RequireSession.
func (controller *FavoritesController) InitFavoritesRoutes() {
	group := controller.api.Group("", middleware.RequireSession(controller.sessionUseCase))

	group.POST("/add-favorite", controller.AddFavorite)
	group.DELETE("/remove-favorite/:location", controller.RemoveFavorite)
	group.DELETE("/clear-favorites", controller.ClearFavorites)
	group.GET("/get-all-favorites", controller.GetAllFavorites)

	group.GET("/get-favorite-weather/:location", controller.GetFavoriteWeather)
	group.GET("/get-all-favorites-current-weather", controller.GetAllFavoritesCurrentWeather)
	group.GET("/get-favorite-historical/:location", controller.GetFavoriteHistorical)
	group.GET("/get-all-favorites-historical", controller.GetAllFavoritesHistorical)
	group.GET("/get-favorites-forecast/:location", controller.GetFavoriteNextDayForecast)
	group.GET("/get-all-favorites-forecast", controller.GetAllFavoritesNextDayForecast)
	group.GET("/get-favorite-alerts/:location", controller.GetFavoriteAlerts)
	group.GET("/get-all-favorites-alerts", controller.GetAllFavoritesAlerts)
	group.GET("/get-favorite-coordinates/:location", controller.GetFavoriteCoordinates)
	group.GET("/get-all-favorites-coordinates", controller.GetAllFavoritesCoordinates)
}

// AddFavorite godoc
// @Summary Add a favorite location
// @Description With only a location the current weather is fetched from the provider. With all four
// @Description weather fields they are validated and stored as given (floats must be written as floats).
// @Tags favorites
// @Accept json
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param favorite body model.AddFavoriteDTO true "Favorite"
// @Success 200 {object} model.StatusResponse
// @Success 200 {object} model.Failure "Provider failure"
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /add-favorite [post]
func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	var dto model.AddFavoriteDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return respondError(c, err)
	}
	store := middleware.Store(c)

	if dto.HasWeather() {
		if err := requireWeatherFields(dto); err != nil {
			return respondError(c, err)
		}
		if err := store.AddFavorite(dto.Location, *dto.Temperature, *dto.WindSpeed, *dto.Precipitation, *dto.Humidity); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", Location: dto.Location})
	}

	_, err := controller.useCase.AddFavoriteFromProvider(c.Request().Context(), store, dto.Location)
	return respondSoft(c, model.StatusResponse{Status: "success", Location: dto.Location}, err)
}

// RemoveFavorite godoc
// @Summary Remove a favorite location
// @Tags favorites
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Failure 401 {object} model.ErrorResponse
// @Router /remove-favorite/{location} [delete]
func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	location := locationParam(c)
	if err := controller.useCase.RemoveFavorite(middleware.Store(c), location); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", Location: location})
}

// ClearFavorites godoc
// @Summary Remove every favorite location
// @Tags favorites
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /clear-favorites [delete]
func (controller *FavoritesController) ClearFavorites(c echo.Context) error {
	middleware.Store(c).Clear()
	log.Info(msg.GetMessage("favorites.cleared"))
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

// GetAllFavorites godoc
// @Summary List favorite locations
// @Tags favorites
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {array} string
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites [get]
func (controller *FavoritesController) GetAllFavorites(c echo.Context) error {
	locations, err := controller.useCase.GetAllFavorites(middleware.Store(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, locations)
}

// GetFavoriteWeather godoc
// @Summary Refresh the current weather of a favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {object} model.WeatherRecord
// @Success 200 {object} model.Failure "Provider failure"
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Router /get-favorite-weather/{location} [get]
func (controller *FavoritesController) GetFavoriteWeather(c echo.Context) error {
	record, err := controller.useCase.GetFavoriteWeather(c.Request().Context(), middleware.Store(c), locationParam(c))
	return respondSoft(c, record, err)
}

// GetAllFavoritesCurrentWeather godoc
// @Summary Refresh every favorite and return its temperature
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} map[string]any "Temperature or failure payload per location"
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites-current-weather [get]
func (controller *FavoritesController) GetAllFavoritesCurrentWeather(c echo.Context) error {
	results, err := controller.useCase.GetAllFavoritesCurrentWeather(c.Request().Context(), middleware.Store(c))
	return respondBatch(c, results, err)
}

// GetFavoriteHistorical godoc
// @Summary Weather of the 4 days before today
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {object} model.HistoricalReport
// @Success 200 {object} model.Failure "Provider failure"
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Router /get-favorite-historical/{location} [get]
func (controller *FavoritesController) GetFavoriteHistorical(c echo.Context) error {
	report, err := controller.useCase.GetFavoriteHistorical(c.Request().Context(), middleware.Store(c), locationParam(c))
	return respondSoft(c, report, err)
}

// GetAllFavoritesHistorical godoc
// @Summary Historical weather of every favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} map[string]any
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites-historical [get]
func (controller *FavoritesController) GetAllFavoritesHistorical(c echo.Context) error {
	results, err := controller.useCase.GetAllFavoritesHistorical(c.Request().Context(), middleware.Store(c))
	return respondBatch(c, results, err)
}

// GetFavoriteNextDayForecast godoc
// @Summary Forecast of tomorrow
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {object} model.ForecastReport
// @Success 200 {object} model.Failure "Provider failure"
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Router /get-favorites-forecast/{location} [get]
func (controller *FavoritesController) GetFavoriteNextDayForecast(c echo.Context) error {
	report, err := controller.useCase.GetFavoriteNextDayForecast(c.Request().Context(), middleware.Store(c), locationParam(c))
	return respondSoft(c, report, err)
}

// GetAllFavoritesNextDayForecast godoc
// @Summary Forecast of tomorrow for every favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} map[string]any
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites-forecast [get]
func (controller *FavoritesController) GetAllFavoritesNextDayForecast(c echo.Context) error {
	results, err := controller.useCase.GetAllFavoritesNextDayForecast(c.Request().Context(), middleware.Store(c))
	return respondBatch(c, results, err)
}

// GetFavoriteAlerts godoc
// @Summary Active alerts of a favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {array} object "Alerts, or {\"alert\":\"none\"}"
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Router /get-favorite-alerts/{location} [get]
func (controller *FavoritesController) GetFavoriteAlerts(c echo.Context) error {
	report, err := controller.useCase.GetFavoriteAlerts(c.Request().Context(), middleware.Store(c), locationParam(c))
	return respondSoft(c, report, err)
}

// GetAllFavoritesAlerts godoc
// @Summary Active alerts of every favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} map[string]any
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites-alerts [get]
func (controller *FavoritesController) GetAllFavoritesAlerts(c echo.Context) error {
	results, err := controller.useCase.GetAllFavoritesAlerts(c.Request().Context(), middleware.Store(c))
	return respondBatch(c, results, err)
}

// GetFavoriteCoordinates godoc
// @Summary Coordinates of a favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Param location path string true "Location"
// @Success 200 {object} model.CoordinateReport
// @Failure 400 {object} model.ErrorResponse "Location not found"
// @Router /get-favorite-coordinates/{location} [get]
func (controller *FavoritesController) GetFavoriteCoordinates(c echo.Context) error {
	report, err := controller.useCase.GetFavoriteCoordinates(c.Request().Context(), middleware.Store(c), locationParam(c))
	return respondSoft(c, report, err)
}

// GetAllFavoritesCoordinates godoc
// @Summary Coordinates of every favorite
// @Tags weather
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} map[string]any
// @Failure 404 {object} model.ErrorResponse "No favorites"
// @Router /get-all-favorites-coordinates [get]
func (controller *FavoritesController) GetAllFavoritesCoordinates(c echo.Context) error {
	results, err := controller.useCase.GetAllFavoritesCoordinates(c.Request().Context(), middleware.Store(c))
	return respondBatch(c, results, err)
}

func respondBatch[T any](c echo.Context, results map[string]model.Result[T], err error) error {
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func locationParam(c echo.Context) string {
	raw := c.Param("location")
	if location, err := url.PathUnescape(raw); err == nil {
		return location
	}
	return raw
}

func requireWeatherFields(dto model.AddFavoriteDTO) error {
	fields := []struct {
		name  string
		value *json.Number
	}{
		{"temperature", dto.Temperature},
		{"wind_speed", dto.WindSpeed},
		{"precipitation", dto.Precipitation},
		{"humidity", dto.Humidity},
	}
	for _, field := range fields {
		if field.value == nil {
			return apperr.InvalidArgument(msg.GetMessage("error.invalid-payload", field.name+" is required"))
		}
	}
	return nil
}
