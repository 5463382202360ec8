package aws

import (
	"context"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/gateway/queue"
	"weather-favorites/pkg/sqs"
)

// SQSEventPublisher publishes account events through pkg/sqs.Sender.
type SQSEventPublisher struct {
	sender    *sqs.Sender
	queueName string
}

var _ queue.EventPublisher = (*SQSEventPublisher)(nil)

func NewSQSEventPublisher(client sqs.SenderClient, queueName string) *SQSEventPublisher {
	return &SQSEventPublisher{sender: sqs.NewSender(client), queueName: queueName}
}

func (adapter *SQSEventPublisher) Publish(ctx context.Context, event entity.AccountEvent) error {
	return adapter.sender.SendMessage(ctx, adapter.queueName, event, map[string]string{"event_type": string(event.Type)})
}
