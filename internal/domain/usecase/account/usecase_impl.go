package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/gateway/db"
	"weather-favorites/internal/domain/gateway/queue"
	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

type accountUseCase struct {
	userGateway db.UserGateway
	publisher   queue.EventPublisher
	now         func() time.Time
}

func NewAccountUseCase(userGateway db.UserGateway, publisher queue.EventPublisher) UseCase {
	if publisher == nil {
		publisher = queue.NoopPublisher{}
	}
	return &accountUseCase{userGateway: userGateway, publisher: publisher, now: time.Now}
}

func (uc *accountUseCase) CreateUser(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return apperr.InvalidArgument(msg.GetMessage("account.invalid-username"))
	}
	if password == "" {
		return apperr.InvalidArgument(msg.GetMessage("account.invalid-password"))
	}

	salt, err := newSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	user, err := uc.userGateway.Create(ctx, entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashPassword(salt, password),
		Salt:         salt,
	})
	if err != nil {
		return err
	}

	log.Info(msg.GetMessage("account.created", username), zap.String("user_id", user.ID))
	uc.publish(ctx, entity.UserCreated, user.ID, username)
	return nil
}

// Login checks the credentials. A wrong password is a failed result, not an error.
func (uc *accountUseCase) Login(ctx context.Context, username, password string) (model.LoginResult, error) {
	user, err := uc.findActive(ctx, username)
	if err != nil {
		return model.LoginResult{}, err
	}

	if !passwordMatches(user.Salt, password, user.PasswordHash) {
		return model.LoginResult{Success: false, Message: msg.GetMessage("account.login-failed")}, nil
	}
	return model.LoginResult{Success: true, Message: msg.GetMessage("account.login-success"), UserID: user.ID}, nil
}

func (uc *accountUseCase) RemoveUser(ctx context.Context, username string) error {
	user, err := uc.findActive(ctx, username)
	if err != nil {
		return err
	}

	removed, err := uc.userGateway.SoftDelete(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	if !removed {
		return apperr.NotFound(msg.GetMessage("account.not-found", username))
	}

	log.Info(msg.GetMessage("account.removed", username), zap.String("user_id", user.ID))
	uc.publish(ctx, entity.UserRemoved, user.ID, username)
	return nil
}

func (uc *accountUseCase) ChangePassword(ctx context.Context, username, password string) error {
	if password == "" {
		return apperr.InvalidArgument(msg.GetMessage("account.invalid-password"))
	}

	user, err := uc.findActive(ctx, username)
	if err != nil {
		return err
	}

	salt, err := newSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	updated, err := uc.userGateway.UpdatePassword(ctx, username, hashPassword(salt, password), salt)
	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	if !updated {
		return apperr.NotFound(msg.GetMessage("account.not-found", username))
	}

	log.Info(msg.GetMessage("account.password-changed", username), zap.String("user_id", user.ID))
	uc.publish(ctx, entity.UserPasswordChanged, user.ID, username)
	return nil
}

func (uc *accountUseCase) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	purged, err := uc.userGateway.PurgeDeleted(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted users: %w", err)
	}
	log.Info(msg.GetMessage("account.purged", purged), zap.Time("older_than", olderThan))
	return purged, nil
}

func (uc *accountUseCase) findActive(ctx context.Context, username string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.InvalidArgument(msg.GetMessage("account.invalid-username"))
	}

	user, err := uc.userGateway.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || user.Deleted {
		return nil, apperr.NotFound(msg.GetMessage("account.not-found", username))
	}
	return user, nil
}

// publish is best effort: the account change is already committed.
func (uc *accountUseCase) publish(ctx context.Context, eventType entity.AccountEventType, userID, username string) {
	event := entity.AccountEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Username:   username,
		OccurredAt: uc.now().UTC(),
	}

	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Error(msg.GetMessage("events.publish-failed", eventType, userID), zap.Error(err))
		return
	}
	log.Debug(msg.GetMessage("events.published", eventType, userID))
}
