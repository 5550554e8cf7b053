package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamRepository creates the Redis-streams-backed job transport.
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// PublishJob appends an import job to the job stream.
func (r *streamRepository) PublishJob(ctx context.Context, job *domain.ImportJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal import job: %w", err)
	}

	if err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamImportJobs,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err(); err != nil {
		r.logger.Error("Failed to publish import job",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
		return fmt.Errorf("publish import job: %w", err)
	}

	r.logger.Info("Import job published",
		zap.String("job_id", job.JobID.String()),
		zap.Strings("cities", job.Cities),
		zap.Strings("categories", job.Categories))
	return nil
}

// PublishDone appends a completion event to the done stream.
func (r *streamRepository) PublishDone(ctx context.Context, event *domain.ImportDoneEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal done event: %w", err)
	}

	if err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamImportDone,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err(); err != nil {
		r.logger.Error("Failed to publish done event",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))
		return fmt.Errorf("publish done event: %w", err)
	}

	return nil
}

// CreateConsumerGroup creates the consumer group, starting at new
// messages. MKSTREAM creates the stream if it does not exist yet.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		// BUSYGROUP means the group already exists.
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch reads up to count new messages without blocking longer
// than a single poll interval.
func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(count),
		Block:    1 * time.Second,
	}).Result()

	if err == redis.Nil {
		return nil, nil // No new messages
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Error("Failed to read from stream",
			zap.String("stream", stream),
			zap.Error(err))
		return nil, fmt.Errorf("read stream: %w", err)
	}

	var messages []domain.StreamMessage
	for _, stream := range result {
		for _, msg := range stream.Messages {
			data, _ := msg.Values["data"].(string)
			messages = append(messages, domain.StreamMessage{
				ID:   msg.ID,
				Data: data,
			})
		}
	}
	return messages, nil
}

// AckMessage acknowledges a processed message.
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to ack message",
			zap.String("stream", stream),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("ack message: %w", err)
	}
	return nil
}
