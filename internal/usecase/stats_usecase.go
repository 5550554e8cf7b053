package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
)

const defaultRecentRuns = 20

// StatsUseCase reads the append-only import run log.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

func NewStatsUseCase(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetRecentRuns returns the latest import runs, newest first.
func (uc *StatsUseCase) GetRecentRuns(ctx context.Context, limit int) ([]domain.ImportStats, error) {
	if limit <= 0 {
		limit = defaultRecentRuns
	}

	runs, err := uc.statsRepo.GetRecentRuns(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to load recent import runs", zap.Error(err))
		return nil, err
	}
	return runs, nil
}
