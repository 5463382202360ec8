package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weather-favorites/internal/domain/entity"
)

// MockEventPublisher is a testify mock of queue.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockEventPublisher) Publish(ctx context.Context, event entity.AccountEvent) error {
	return _m.Called(ctx, event).Error(0)
}
