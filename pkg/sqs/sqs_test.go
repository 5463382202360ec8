package sqs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	mu            sync.Mutex
	urlLookups    int
	sent          []*sqs.SendMessageInput
	pending       []types.Message
	deleted       []string
	receiveCalled chan struct{}
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlLookups++
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/" + *params.QueueName)}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	messages := f.pending
	f.pending = nil
	f.mu.Unlock()

	if len(messages) == 0 {
		select {
		case f.receiveCalled <- struct{}{}:
		default:
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &sqs.ReceiveMessageOutput{Messages: messages}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSender_SendMessageCachesQueueURL(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSender(client)

	require.NoError(t, sender.SendMessage(context.Background(), "events", map[string]string{"type": "user.created"}, map[string]string{"event_type": "user.created"}))
	require.NoError(t, sender.SendMessage(context.Background(), "events", map[string]string{"type": "user.removed"}, nil))

	assert.Equal(t, 1, client.urlLookups)
	require.Len(t, client.sent, 2)
	assert.Equal(t, "https://sqs.local/events", *client.sent[0].QueueUrl)
	assert.JSONEq(t, `{"type":"user.created"}`, *client.sent[0].MessageBody)
	assert.Equal(t, "user.created", *client.sent[0].MessageAttributes["event_type"].StringValue)
}

func TestWorker_DeletesOnlyHandledMessages(t *testing.T) {
	client := &fakeSQS{
		pending: []types.Message{
			{MessageId: aws.String("1"), ReceiptHandle: aws.String("r-1"), Body: aws.String("ok")},
			{MessageId: aws.String("2"), ReceiptHandle: aws.String("r-2"), Body: aws.String("bad")},
		},
		receiveCalled: make(chan struct{}, 1),
	}
	handler := HandlerFunc(func(_ context.Context, msg *types.Message) error {
		if *msg.Body == "bad" {
			return errors.New("cannot handle")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	worker, err := NewWorker(ctx, client, "events", handler, &WorkerConfig{WaitTimeSeconds: 1})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	select {
	case <-client.receiveCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not poll again")
	}
	assert.Equal(t, StatusUp, worker.HealthCheck().Status)

	cancel()
	<-done

	health := worker.HealthCheck()
	assert.Equal(t, StatusDown, health.Status)
	assert.Equal(t, "1", health.Details["processed"])
	assert.Equal(t, "1", health.Details["failed"])
	assert.Equal(t, []string{"r-1"}, client.deleted)
}

func TestNewWorker_ValidatesConfig(t *testing.T) {
	_, err := NewWorker(context.Background(), &fakeSQS{}, "events", nil, &WorkerConfig{MaxNumberOfMessages: 11})
	assert.Error(t, err)
}
