package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/pkg/utils"
	"github.com/activity-import-service/internal/usecase"
)

// StatsHandler serves the import run history.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetRecentRuns godoc
// @Summary Get recent import runs
// @Description Returns the latest import run log rows, newest first
// @Tags Statistics
// @Produce json
// @Param limit query int false "Maximum rows to return" default(20)
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/import/stats [get]
func (h *StatsHandler) GetRecentRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	runs, err := h.statsUC.GetRecentRuns(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to get recent runs", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, runs, &utils.Meta{
		Total: len(runs),
	})
}
