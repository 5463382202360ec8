package mocks

import (
	"github.com/stretchr/testify/mock"

	"weather-favorites/internal/domain/model"
)

// MockHealthGateway mocks any component exposing Health().
type MockHealthGateway struct {
	mock.Mock
}

func NewMockHealthGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthGateway {
	m := &MockHealthGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockHealthGateway) Health() model.ComponentHealthStatus {
	ret := _m.Called()
	r0, _ := ret.Get(0).(model.ComponentHealthStatus)
	return r0
}
