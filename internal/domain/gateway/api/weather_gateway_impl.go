package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"weather-favorites/internal/domain/model/external"
	"weather-favorites/pkg/apperr"
	httpclient "weather-favorites/pkg/http"
	"weather-favorites/pkg/msg"
)

const historyDateLayout = "2006-01-02"

// weatherGatewayImpl implements the WeatherGateway interface against weatherapi.com
type weatherGatewayImpl struct {
	httpClient *httpclient.Client
	timeout    time.Duration
}

// NewWeatherGateway creates a new instance of WeatherGateway. The API key is sent as the "key"
// query parameter and every call is bounded by timeout, retries included.
func NewWeatherGateway(baseUrl, apiKey string, timeout time.Duration, clientOptions httpclient.ClientOptions) WeatherGateway {
	if clientOptions.DefaultQueryParams == nil {
		clientOptions.DefaultQueryParams = map[string]string{}
	}
	clientOptions.DefaultQueryParams["key"] = apiKey
	if clientOptions.Logger == nil {
		clientOptions.Logger = &httpclient.ZapLogger{Name: "weatherapi"}
	}

	return &weatherGatewayImpl{
		httpClient: httpclient.NewHttpClient(baseUrl, clientOptions),
		timeout:    timeout,
	}
}

func (w *weatherGatewayImpl) GetCurrent(ctx context.Context, location string) (*external.CurrentResponse, error) {
	response := &external.CurrentResponse{}
	if err := w.get(ctx, "/current.json", map[string]string{"q": location}, response); err != nil {
		return nil, err
	}
	if response.Current == nil {
		return nil, malformed("current")
	}
	return response, nil
}

func (w *weatherGatewayImpl) GetHistory(ctx context.Context, location string, date time.Time) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	params := map[string]string{"q": location, "dt": date.Format(historyDateLayout)}
	if err := w.get(ctx, "/history.json", params, response); err != nil {
		return nil, err
	}
	if response.Forecast == nil || len(response.Forecast.ForecastDay) == 0 {
		return nil, malformed("forecast.forecastday")
	}
	return response, nil
}

func (w *weatherGatewayImpl) GetForecast(ctx context.Context, location string, days int) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	params := map[string]string{"q": location, "days": strconv.Itoa(days)}
	if err := w.get(ctx, "/forecast.json", params, response); err != nil {
		return nil, err
	}
	if response.Forecast == nil {
		return nil, malformed("forecast")
	}
	return response, nil
}

func (w *weatherGatewayImpl) GetAlerts(ctx context.Context, location string) (*external.AlertsResponse, error) {
	response := &external.AlertsResponse{}
	if err := w.get(ctx, "/alerts.json", map[string]string{"q": location}, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (w *weatherGatewayImpl) GetTimezone(ctx context.Context, location string) (*external.TimezoneResponse, error) {
	response := &external.TimezoneResponse{}
	if err := w.get(ctx, "/timezone.json", map[string]string{"q": location}, response); err != nil {
		return nil, err
	}
	if response.Location == nil {
		return nil, malformed("location")
	}
	return response, nil
}

func (w *weatherGatewayImpl) get(ctx context.Context, path string, params map[string]string, successResp any) error {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(successResp).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()
	if err == nil {
		return nil
	}

	var apiErr *external.APIErrorResponse
	if errResp != nil {
		apiErr, _ = errResp.(*external.APIErrorResponse)
	}
	return classify(status, apiErr, err)
}

// classify maps a client error to a provider failure with a specific cause
func classify(status int, apiErr *external.APIErrorResponse, err error) *apperr.ProviderFailure {
	var statusErr *httpclient.StatusError
	var decodeErr *httpclient.DecodeError
	var netErr net.Error

	switch {
	case errors.Is(err, httpclient.ErrCircuitOpen):
		return &apperr.ProviderFailure{Cause: apperr.CauseCircuitOpen, Message: msg.GetMessage("weather.circuit-open"), Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &apperr.ProviderFailure{Cause: apperr.CauseTimeout, Message: msg.GetMessage("weather.timeout"), Err: err}
	case errors.As(err, &decodeErr):
		return &apperr.ProviderFailure{Cause: apperr.CauseMalformed, StatusCode: decodeErr.StatusCode, Message: msg.GetMessage("weather.malformed", decodeErr.Err.Error()), Err: err}
	case errors.As(err, &statusErr):
		failure := &apperr.ProviderFailure{Cause: apperr.CauseStatus, StatusCode: statusErr.StatusCode, Message: http.StatusText(statusErr.StatusCode), Err: err}
		if apiErr != nil && apiErr.Error.Code != 0 {
			failure.Code = strconv.Itoa(apiErr.Error.Code)
			failure.Message = apiErr.Error.Message
		}
		return failure
	default:
		return &apperr.ProviderFailure{Cause: apperr.CauseTransport, StatusCode: status, Message: err.Error(), Err: err}
	}
}

func malformed(section string) *apperr.ProviderFailure {
	return &apperr.ProviderFailure{Cause: apperr.CauseMalformed, Message: msg.GetMessage("weather.malformed", "missing "+section)}
}
