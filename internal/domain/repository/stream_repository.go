package repository

import (
	"context"

	"github.com/activity-import-service/internal/domain"
)

// StreamRepository moves import jobs between the API and the worker.
type StreamRepository interface {
	// PublishJob appends an import job to the job stream.
	PublishJob(ctx context.Context, job *domain.ImportJob) error

	// PublishDone appends a completion event to the done stream.
	PublishDone(ctx context.Context, event *domain.ImportDoneEvent) error

	// CreateConsumerGroup creates the consumer group for a stream if it
	// does not exist yet.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
