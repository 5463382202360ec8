package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-favorites/internal/domain/model/external"
)

// MockWeatherGateway is a testify mock of api.WeatherGateway.
type MockWeatherGateway struct {
	mock.Mock
}

func NewMockWeatherGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWeatherGateway {
	m := &MockWeatherGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockWeatherGateway) GetCurrent(ctx context.Context, location string) (*external.CurrentResponse, error) {
	ret := _m.Called(ctx, location)
	r0, _ := ret.Get(0).(*external.CurrentResponse)
	return r0, ret.Error(1)
}

func (_m *MockWeatherGateway) GetHistory(ctx context.Context, location string, date time.Time) (*external.ForecastResponse, error) {
	ret := _m.Called(ctx, location, date)
	r0, _ := ret.Get(0).(*external.ForecastResponse)
	return r0, ret.Error(1)
}

func (_m *MockWeatherGateway) GetForecast(ctx context.Context, location string, days int) (*external.ForecastResponse, error) {
	ret := _m.Called(ctx, location, days)
	r0, _ := ret.Get(0).(*external.ForecastResponse)
	return r0, ret.Error(1)
}

func (_m *MockWeatherGateway) GetAlerts(ctx context.Context, location string) (*external.AlertsResponse, error) {
	ret := _m.Called(ctx, location)
	r0, _ := ret.Get(0).(*external.AlertsResponse)
	return r0, ret.Error(1)
}

func (_m *MockWeatherGateway) GetTimezone(ctx context.Context, location string) (*external.TimezoneResponse, error) {
	ret := _m.Called(ctx, location)
	r0, _ := ret.Get(0).(*external.TimezoneResponse)
	return r0, ret.Error(1)
}
