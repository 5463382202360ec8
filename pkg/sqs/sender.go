package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SenderClient defines the SQS operations needed to send messages
type SenderClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SenderClient
	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SenderClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue.
// Attributes are attached as string message attributes.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error {
	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	input := &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for name, value := range attributes {
			v := value
			input.MessageAttributes[name] = types.MessageAttributeValue{
				DataType:    stringPtr("String"),
				StringValue: &v,
			}
		}
	}

	if _, err = s.sqsClient.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return nil
}

// getQueueURL retrieves the URL for the specified queue name, caching it per sender
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	url, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return url, nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *result.QueueUrl
	s.mu.Unlock()
	return *result.QueueUrl, nil
}

func stringPtr(v string) *string {
	return &v
}
