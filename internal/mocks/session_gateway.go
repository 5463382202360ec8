package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/model"
)

// MockSessionGateway is a testify mock of cache.SessionGateway.
type MockSessionGateway struct {
	mock.Mock
}

func NewMockSessionGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionGateway {
	m := &MockSessionGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockSessionGateway) Find(ctx context.Context, userID string) (*entity.Session, error) {
	ret := _m.Called(ctx, userID)
	r0, _ := ret.Get(0).(*entity.Session)
	return r0, ret.Error(1)
}

func (_m *MockSessionGateway) Create(ctx context.Context, userID string) (bool, error) {
	ret := _m.Called(ctx, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockSessionGateway) UpdateFavorites(ctx context.Context, userID string, favorites map[string]model.WeatherRecord) (bool, error) {
	ret := _m.Called(ctx, userID, favorites)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockSessionGateway) Delete(ctx context.Context, userID string) error {
	return _m.Called(ctx, userID).Error(0)
}
