package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/apperr"
	httpclient "weather-favorites/pkg/http"
)

type WeatherGatewayTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	gateway WeatherGateway
}

func (s *WeatherGatewayTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.gateway = NewWeatherGateway(s.server.URL, "test-key", 200*time.Millisecond, httpclient.ClientOptions{})
}

func (s *WeatherGatewayTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *WeatherGatewayTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *WeatherGatewayTestSuite) TestGetCurrent() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/current.json", r.URL.Path)
		s.Equal("test-key", r.URL.Query().Get("key"))
		s.Equal("New York", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"New York"},"current":{"temp_f":50.5,"wind_mph":7.2,"precip_in":0.01,"humidity":64}}`))
	}

	response, err := s.gateway.GetCurrent(context.Background(), "New York")

	s.Require().NoError(err)
	s.Equal(50.5, response.Current.TempF)
	s.Equal(7.2, response.Current.WindMph)
	s.Equal(0.01, response.Current.PrecipIn)
	s.Equal(64.0, response.Current.Humidity)
}

func (s *WeatherGatewayTestSuite) TestGetHistorySendsDate() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/history.json", r.URL.Path)
		s.Equal("2024-05-09", r.URL.Query().Get("dt"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forecast":{"forecastday":[{"date":"2024-05-09","day":{"avgtemp_f":61.2,"maxwind_mph":11.0,"totalprecip_in":0.2,"avghumidity":70}}]}}`))
	}

	response, err := s.gateway.GetHistory(context.Background(), "Boston", time.Date(2024, 5, 9, 15, 0, 0, 0, time.UTC))

	s.Require().NoError(err)
	s.Equal(61.2, response.Forecast.ForecastDay[0].Day.AvgTempF)
}

func (s *WeatherGatewayTestSuite) TestProviderErrorCode() {
	s.respond(http.StatusBadRequest, `{"error":{"code":1006,"message":"No matching location found."}}`)

	_, err := s.gateway.GetCurrent(context.Background(), "Atlantis")

	failure, ok := apperr.AsProviderFailure(err)
	s.Require().True(ok)
	s.Equal(apperr.CauseStatus, failure.Cause)
	s.Equal(http.StatusBadRequest, failure.StatusCode)
	s.Equal("1006", failure.ErrorCode())
	s.Equal("No matching location found.", failure.Message)
}

func (s *WeatherGatewayTestSuite) TestStatusWithoutProviderBody() {
	s.respond(http.StatusForbidden, `forbidden`)

	_, err := s.gateway.GetAlerts(context.Background(), "Boston")

	failure, ok := apperr.AsProviderFailure(err)
	s.Require().True(ok)
	s.Equal(apperr.CauseStatus, failure.Cause)
	s.Equal("403", failure.ErrorCode())
}

func (s *WeatherGatewayTestSuite) TestMalformedBody() {
	s.respond(http.StatusOK, `{"current":`)

	_, err := s.gateway.GetCurrent(context.Background(), "Boston")

	failure, ok := apperr.AsProviderFailure(err)
	s.Require().True(ok)
	s.Equal(apperr.CauseMalformed, failure.Cause)
}

func (s *WeatherGatewayTestSuite) TestMissingSection() {
	s.respond(http.StatusOK, `{"location":{"name":"Boston"}}`)

	_, err := s.gateway.GetTimezone(context.Background(), "Boston")
	s.NoError(err)

	_, err = s.gateway.GetCurrent(context.Background(), "Boston")
	failure, ok := apperr.AsProviderFailure(err)
	s.Require().True(ok)
	s.Equal(apperr.CauseMalformed, failure.Cause)
}

func (s *WeatherGatewayTestSuite) TestTimeout() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}

	_, err := s.gateway.GetCurrent(context.Background(), "Boston")

	failure, ok := apperr.AsProviderFailure(err)
	s.Require().True(ok)
	s.Equal(apperr.CauseTimeout, failure.Cause)
	s.Equal("timeout", failure.ErrorCode())
}

func (s *WeatherGatewayTestSuite) TestAlertsWithoutSection() {
	s.respond(http.StatusOK, `{"location":{"name":"Boston"}}`)

	response, err := s.gateway.GetAlerts(context.Background(), "Boston")

	s.Require().NoError(err)
	s.Nil(response.Alerts)
}

func (s *WeatherGatewayTestSuite) TestAlertsSectionWithoutList() {
	s.respond(http.StatusOK, `{"location":{"name":"Boston"},"alerts":{}}`)

	response, err := s.gateway.GetAlerts(context.Background(), "Boston")

	s.Require().NoError(err)
	s.Require().NotNil(response.Alerts)
	s.Nil(response.Alerts.Alert)
}

func (s *WeatherGatewayTestSuite) TestHealthGateway() {
	s.respond(http.StatusOK, `{"current":{"temp_f":1.0}}`)
	s.Equal(model.StatusUp, NewWeatherHealthGateway(s.gateway, "London").Health().Status)

	s.respond(http.StatusUnauthorized, `{"error":{"code":2006,"message":"API key is invalid."}}`)
	s.Equal(model.StatusDown, NewWeatherHealthGateway(s.gateway, "London").Health().Status)
}

func TestWeatherGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(WeatherGatewayTestSuite))
}
