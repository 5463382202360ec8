package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-favorites/internal/domain/entity"
)

// MockUserGateway is a testify mock of db.UserGateway.
type MockUserGateway struct {
	mock.Mock
}

func NewMockUserGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserGateway {
	m := &MockUserGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	ret := _m.Called(ctx, user)
	r0, _ := ret.Get(0).(*entity.User)
	return r0, ret.Error(1)
}

func (_m *MockUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)
	r0, _ := ret.Get(0).(*entity.User)
	return r0, ret.Error(1)
}

func (_m *MockUserGateway) UpdatePassword(ctx context.Context, username, passwordHash, salt string) (bool, error) {
	ret := _m.Called(ctx, username, passwordHash, salt)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockUserGateway) SoftDelete(ctx context.Context, username string) (bool, error) {
	ret := _m.Called(ctx, username)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockUserGateway) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	ret := _m.Called(ctx, olderThan)
	r0, _ := ret.Get(0).(int64)
	return r0, ret.Error(1)
}
