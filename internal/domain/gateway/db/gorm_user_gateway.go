package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/msg"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	err := gateway.DB.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.AlreadyExists(msg.GetMessage("account.exists", user.Username))
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).
		Where("username = ? AND deleted = ?", username, false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) UpdatePassword(ctx context.Context, username, passwordHash, salt string) (bool, error) {
	result := gateway.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("username = ? AND deleted = ?", username, false).
		Updates(map[string]any{"password_hash": passwordHash, "salt": salt, "updated_at": time.Now()})
	return result.RowsAffected > 0, result.Error
}

func (gateway *GormUserGateway) SoftDelete(ctx context.Context, username string) (bool, error) {
	result := gateway.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("username = ? AND deleted = ?", username, false).
		Updates(map[string]any{"deleted": true, "updated_at": time.Now()})
	return result.RowsAffected > 0, result.Error
}

func (gateway *GormUserGateway) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	result := gateway.DB.WithContext(ctx).
		Where("deleted = ? AND updated_at < ?", true, olderThan).
		Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
