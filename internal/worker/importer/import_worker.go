package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
	"github.com/activity-import-service/internal/usecase"
	"github.com/activity-import-service/internal/usecase/dto"
	"github.com/activity-import-service/internal/worker"
)

const (
	// Each job is a full multi-city import run, so jobs are consumed
	// one at a time.
	maxBatchSize    = 1
	emptyQueueSleep = 500 * time.Millisecond
)

// ImportWorker consumes queued import jobs and runs the pipeline.
type ImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	importUC     *usecase.ImportUseCase
	consumerName string
	maxRetries   int
}

func NewImportWorker(
	streamRepo repository.StreamRepository,
	importUC *usecase.ImportUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ImportWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ImportWorker{
		BaseWorker:   worker.NewBaseWorker("venue-import", consumerGroup, logger),
		streamRepo:   streamRepo,
		importUC:     importUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until stopped.
func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ImportWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamImportJobs, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and runs queued jobs. Returns the number of
// messages consumed.
func (w *ImportWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamImportJobs,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	for _, msg := range messages {
		job, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK the malformed message so it does not jam the stream
			_ = w.streamRepo.AckMessage(ctx, domain.StreamImportJobs, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.runJob(ctx, job)

		if err := w.streamRepo.AckMessage(ctx, domain.StreamImportJobs, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// runJob executes one import job and publishes the outcome. The done
// event carries the error instead of failing the worker loop.
func (w *ImportWorker) runJob(ctx context.Context, job *domain.ImportJob) {
	logger := w.Logger()
	logger.Info("Running import job",
		zap.String("job_id", job.JobID.String()),
		zap.Strings("cities", job.Cities),
		zap.Strings("categories", job.Categories))

	req := dto.ImportRequest{
		Cities:         job.Cities,
		Categories:     job.Categories,
		MaxPerCategory: job.MaxPerCategory,
	}

	doneEvent := &domain.ImportDoneEvent{JobID: job.JobID}

	result, err := w.importUC.ProcessImport(ctx, req)
	if err != nil {
		logger.Error("Import job failed",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
		doneEvent.Error = err.Error()
	} else {
		doneEvent.TotalFound = result.FoursquareResults.TotalFound
		doneEvent.ActivitiesInserted = result.DatabaseResults.ActivitiesInserted
		doneEvent.FailedPairs = result.FoursquareResults.FailedFetches
	}

	if err := w.streamRepo.PublishDone(ctx, doneEvent); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
	}
}

func (w *ImportWorker) parseMessage(msg domain.StreamMessage) (*domain.ImportJob, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var job domain.ImportJob
	if err := json.Unmarshal([]byte(msg.Data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}
