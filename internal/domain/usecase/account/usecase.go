package account

import (
	"context"
	"time"

	"weather-favorites/internal/domain/model"
)

type UseCase interface {
	CreateUser(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (model.LoginResult, error)
	RemoveUser(ctx context.Context, username string) error
	ChangePassword(ctx context.Context, username, password string) error
	PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error)
}
