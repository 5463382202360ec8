package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

// AccountEventProcessor reacts to account events published by any replica. A removed user
// loses its persisted favorites and any in-memory store.
type AccountEventProcessor struct {
	sessionUseCase session.UseCase
}

func NewAccountEventProcessor(sessionUseCase session.UseCase) *AccountEventProcessor {
	return &AccountEventProcessor{sessionUseCase: sessionUseCase}
}

// HandleMessage implements the sqs.Handler interface
func (p *AccountEventProcessor) HandleMessage(ctx context.Context, message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	messageID := ""
	if message.MessageId != nil {
		messageID = *message.MessageId
	}
	log.Debug(msg.GetMessage("events.processing", messageID))

	var event entity.AccountEvent
	if err := json.Unmarshal([]byte(*message.Body), &event); err != nil {
		return fmt.Errorf("failed to unmarshal account event: %w", err)
	}

	switch event.Type {
	case entity.UserRemoved:
		if event.UserID == "" {
			return fmt.Errorf("account event %s has no user id", event.ID)
		}
		if err := p.sessionUseCase.DeleteSession(ctx, event.UserID); err != nil {
			return fmt.Errorf("failed to delete session of user %s: %w", event.UserID, err)
		}
	default:
		log.Debug("Ignoring account event", zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))
		return nil
	}

	log.Info(msg.GetMessage("events.processed", event.Type, event.UserID), zap.String("event_id", event.ID))
	return nil
}
