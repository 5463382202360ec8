package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/msg"
)

const uniqueViolation = "23505"

type SQLCUserGateway struct {
	DB *sql.DB
}

var _ UserGateway = (*SQLCUserGateway)(nil)

func NewSQLCUserGateway(db *sql.DB) *SQLCUserGateway {
	return &SQLCUserGateway{DB: db}
}

func (gateway *SQLCUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, username, password_hash, salt, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, $5, $5)
		RETURNING created_at, updated_at`

	now := time.Now().UTC()
	err := gateway.DB.QueryRowContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.Salt, now).
		Scan(&user.CreatedAt, &user.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return nil, apperr.AlreadyExists(msg.GetMessage("account.exists", user.Username))
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *SQLCUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, salt, deleted, created_at, updated_at
		FROM users
		WHERE username = $1 AND deleted = false`

	var user entity.User
	err := gateway.DB.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt, &user.Deleted, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *SQLCUserGateway) UpdatePassword(ctx context.Context, username, passwordHash, salt string) (bool, error) {
	query := `
		UPDATE users SET password_hash = $1, salt = $2, updated_at = $3
		WHERE username = $4 AND deleted = false`

	return gateway.exec(ctx, query, passwordHash, salt, time.Now().UTC(), username)
}

func (gateway *SQLCUserGateway) SoftDelete(ctx context.Context, username string) (bool, error) {
	query := `UPDATE users SET deleted = true, updated_at = $1 WHERE username = $2 AND deleted = false`

	return gateway.exec(ctx, query, time.Now().UTC(), username)
}

func (gateway *SQLCUserGateway) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM users WHERE deleted = true AND updated_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (gateway *SQLCUserGateway) exec(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := gateway.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
