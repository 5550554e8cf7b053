package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
	"github.com/activity-import-service/internal/pkg/errors"
	"github.com/activity-import-service/internal/pkg/utils"
	"github.com/activity-import-service/internal/pkg/validator"
	"github.com/activity-import-service/internal/taxonomy"
	"github.com/activity-import-service/internal/usecase"
	"github.com/activity-import-service/internal/usecase/dto"
)

// ImportHandler exposes the venue import pipeline over HTTP.
type ImportHandler struct {
	importUC   *usecase.ImportUseCase
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewImportHandler(importUC *usecase.ImportUseCase, streamRepo repository.StreamRepository, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC:   importUC,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// RunImport godoc
// @Summary Run a venue import
// @Description Fetches venues from the places provider for the requested cities and categories, filters and classifies them, and upserts the results as activities
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Cities and categories to import"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/import [post]
func (h *ImportHandler) RunImport(c *fiber.Ctx) error {
	req, err := h.parseImportRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Import requested",
		zap.Strings("cities", req.Cities),
		zap.Strings("categories", req.Categories),
		zap.Int("max_per_category", req.MaxPerCategory))

	result, err := h.importUC.ProcessImport(c.Context(), *req)
	if err != nil {
		h.logger.Error("Import run failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// RunImportAsync godoc
// @Summary Queue a venue import
// @Description Publishes an import job to the job stream; a worker picks it up and runs the pipeline in the background
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Cities and categories to import"
// @Success 202 {object} dto.AsyncImportResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/import/async [post]
func (h *ImportHandler) RunImportAsync(c *fiber.Ctx) error {
	req, err := h.parseImportRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	job := &domain.ImportJob{
		JobID:          uuid.New(),
		Cities:         req.Cities,
		Categories:     req.Categories,
		MaxPerCategory: req.MaxPerCategory,
	}

	if err := h.streamRepo.PublishJob(c.Context(), job); err != nil {
		return utils.SendError(c, errors.ErrInternalServer)
	}

	return c.Status(fiber.StatusAccepted).JSON(dto.AsyncImportResponse{
		JobID:  job.JobID.String(),
		Status: "queued",
	})
}

// GetMetadata godoc
// @Summary Describe the import API
// @Description Returns the available categories and the expected request shape
// @Tags Import
// @Produce json
// @Success 200 {object} dto.ImportMetadata
// @Router /api/v1/import [get]
func (h *ImportHandler) GetMetadata(c *fiber.Ctx) error {
	return c.JSON(dto.ImportMetadata{
		Message:             "Foursquare venue import API",
		AvailableCategories: taxonomy.Categories(),
		Usage: dto.ImportUsage{
			Method: "POST",
			Body: dto.ImportRequest{
				Cities:         []string{"New York", "Chicago"},
				Categories:     []string{"preschools", "sports-fitness"},
				MaxPerCategory: 25,
			},
		},
	})
}

// parseImportRequest decodes and validates the request body. Unknown
// category keys are rejected up front so a typo fails fast instead of
// producing a run full of pair errors.
func (h *ImportHandler) parseImportRequest(c *fiber.Ctx) (*dto.ImportRequest, error) {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		})
	}

	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	var invalid []string
	for _, category := range req.Categories {
		if !taxonomy.IsValidCategory(category) {
			invalid = append(invalid, category)
		}
	}
	if len(invalid) > 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"unknown_categories": invalid,
		})
	}

	return &req, nil
}
