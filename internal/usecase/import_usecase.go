package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
	"github.com/activity-import-service/internal/taxonomy"
	"github.com/activity-import-service/internal/usecase/dto"
)

// ImportUseCase runs the venue import pipeline: fetch, filter, classify,
// map and persist, with run statistics recorded at the end.
type ImportUseCase struct {
	placesRepo   repository.PlacesRepository
	cityRepo     repository.CityRepository
	activityRepo repository.ActivityRepository
	statsRepo    repository.StatsRepository
	logger       *zap.Logger

	batchSize         int
	defaultCityTarget int
}

func NewImportUseCase(
	placesRepo repository.PlacesRepository,
	cityRepo repository.CityRepository,
	activityRepo repository.ActivityRepository,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
	batchSize int,
	defaultCityTarget int,
) *ImportUseCase {
	return &ImportUseCase{
		placesRepo:        placesRepo,
		cityRepo:          cityRepo,
		activityRepo:      activityRepo,
		statsRepo:         statsRepo,
		logger:            logger,
		batchSize:         batchSize,
		defaultCityTarget: defaultCityTarget,
	}
}

// RunImport walks every (city, category) pair strictly sequentially and
// aggregates the classified venues. A failing pair is recorded and the
// loop continues: this is the containment boundary for UnknownCity,
// UnknownCategory and provider errors. The result is always returned,
// never partially.
func (uc *ImportUseCase) RunImport(
	ctx context.Context,
	cities []string,
	categories []string,
	maxPerCategory int,
) *domain.ImportRunResult {
	result := &domain.ImportRunResult{
		Venues: []domain.ClassifiedVenue{},
		Errors: []string{},
	}

	for _, city := range cities {
		perCategory := uc.perCategoryTarget(maxPerCategory, len(categories))

		for _, category := range categories {
			uc.logger.Info("Importing venues for pair",
				zap.String("city", city),
				zap.String("category", category),
				zap.Int("target", perCategory))

			venues, err := uc.importPair(ctx, city, category, perCategory)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s - %s: %v", city, category, err))
				uc.logger.Warn("Pair import failed",
					zap.String("city", city),
					zap.String("category", category),
					zap.Error(err))
				continue
			}

			result.Total += len(venues)
			result.Successful += len(venues)
			result.Venues = append(result.Venues, venues...)

			uc.logger.Info("Pair import finished",
				zap.String("city", city),
				zap.String("category", category),
				zap.Int("venue_count", len(venues)))
		}
	}

	return result
}

// perCategoryTarget spreads the per-city venue target over the requested
// categories; an explicit maxPerCategory bypasses the split.
func (uc *ImportUseCase) perCategoryTarget(maxPerCategory, categoryCount int) int {
	if maxPerCategory > 0 {
		return maxPerCategory
	}
	if categoryCount == 0 {
		return uc.defaultCityTarget
	}
	return int(math.Ceil(float64(uc.defaultCityTarget) / float64(categoryCount)))
}

// importPair runs search, filter and classify for a single pair.
func (uc *ImportUseCase) importPair(ctx context.Context, city, category string, limit int) ([]domain.ClassifiedVenue, error) {
	point, err := taxonomy.CoordinatesFor(city)
	if err != nil {
		return nil, err
	}
	catCfg, err := taxonomy.ConfigFor(category)
	if err != nil {
		return nil, err
	}

	venues, err := uc.placesRepo.SearchVenues(ctx, city, category, limit)
	if err != nil {
		return nil, err
	}

	filtered := FilterVenues(venues, point, catCfg, limit)

	classified := make([]domain.ClassifiedVenue, 0, len(filtered))
	for _, v := range filtered {
		classified = append(classified, ClassifyVenue(v, catCfg, category, city))
	}
	return classified, nil
}

// ProcessImport executes a full import: fetch+classify, resolve cities,
// dedupe, upsert in batches and append the run's stats row. Batch and
// stats failures are contained; only malformed city lookups surface as
// an error to the caller.
func (uc *ImportUseCase) ProcessImport(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error) {
	runID := uuid.New().String()
	startedAt := time.Now()

	cities, err := uc.cityRepo.GetByNames(ctx, req.Cities)
	if err != nil {
		uc.logger.Error("Failed to load cities", zap.Error(err))
		return nil, err
	}

	run := uc.RunImport(ctx, req.Cities, req.Categories, req.MaxPerCategory)

	activities, dropped := uc.mapToActivities(run.Venues, cities)
	if dropped > 0 {
		uc.logger.Warn("Venues dropped without a matching city",
			zap.String("run_id", runID),
			zap.Int("dropped", dropped))
	}

	insertedCount, insertErrors := uc.upsertInBatches(ctx, activities)

	uc.recordRunStats(ctx, runID, req, run, activities, insertedCount, insertErrors)

	uc.logger.Info("Import run finished",
		zap.String("run_id", runID),
		zap.Int("total_found", run.Total),
		zap.Int("inserted", insertedCount),
		zap.Int("failed_pairs", run.Failed),
		zap.Int("insert_errors", len(insertErrors)),
		zap.Duration("elapsed", time.Since(startedAt)))

	return &dto.ImportResponse{
		Success: true,
		RunID:   runID,
		FoursquareResults: dto.FoursquareResults{
			TotalFound:        run.Total,
			SuccessfulFetches: run.Successful,
			FailedFetches:     run.Failed,
			FetchErrors:       run.Errors,
		},
		DatabaseResults: dto.DatabaseResults{
			ActivitiesProcessed: len(activities),
			ActivitiesInserted:  insertedCount,
			InsertErrors:        insertErrors,
		},
		Summary: dto.ImportSummary{
			CitiesProcessed:      len(req.Cities),
			CategoriesProcessed:  len(req.Categories),
			TotalActivitiesAdded: insertedCount,
		},
	}, nil
}

// mapToActivities resolves each venue to a city row, drops unmatched
// venues, deduplicates by (fsq_id, city) within the run and converts the
// rest to activity rows.
func (uc *ImportUseCase) mapToActivities(venues []domain.ClassifiedVenue, cities []domain.City) ([]domain.Activity, int) {
	activities := make([]domain.Activity, 0, len(venues))
	seen := make(map[string]struct{}, len(venues))
	dropped := 0

	for _, cv := range venues {
		cityID, ok := resolveCity(cv.Venue, cities)
		if !ok {
			dropped++
			uc.logger.Debug("No city match for venue",
				zap.String("fsq_id", cv.FsqID),
				zap.String("name", cv.Name),
				zap.String("locality", cv.Location.Locality))
			continue
		}

		dedupKey := fmt.Sprintf("%s-%d", cv.FsqID, cityID)
		if _, dup := seen[dedupKey]; dup {
			continue
		}
		seen[dedupKey] = struct{}{}

		activities = append(activities, ConvertVenueToActivity(cv, cityID))
	}

	return activities, dropped
}

// resolveCity assigns the first city whose name appears in the venue's
// locality or formatted address.
func resolveCity(v domain.Venue, cities []domain.City) (int64, bool) {
	for _, city := range cities {
		if strings.Contains(v.Location.Locality, city.Name) ||
			strings.Contains(v.Location.FormattedAddress, city.Name) {
			return city.ID, true
		}
	}
	return 0, false
}

// upsertInBatches writes activities in fixed-size batches. A failing
// batch is recorded and the remaining batches still attempt: partial
// success is the expected outcome of a large run.
func (uc *ImportUseCase) upsertInBatches(ctx context.Context, activities []domain.Activity) (int, []string) {
	insertedCount := 0
	insertErrors := []string{}

	for i := 0; i < len(activities); i += uc.batchSize {
		end := i + uc.batchSize
		if end > len(activities) {
			end = len(activities)
		}
		batchNum := i/uc.batchSize + 1

		inserted, err := uc.activityRepo.UpsertBatch(ctx, activities[i:end])
		if err != nil {
			insertErrors = append(insertErrors, fmt.Sprintf("Batch %d: %v", batchNum, err))
			uc.logger.Error("Upsert batch failed",
				zap.Int("batch", batchNum),
				zap.Int("size", end-i),
				zap.Error(err))
			continue
		}
		insertedCount += inserted
	}

	return insertedCount, insertErrors
}

// recordRunStats appends the run's log row. A write failure here is
// logged and swallowed: the activity rows are already committed.
func (uc *ImportUseCase) recordRunStats(
	ctx context.Context,
	runID string,
	req dto.ImportRequest,
	run *domain.ImportRunResult,
	activities []domain.Activity,
	insertedCount int,
	insertErrors []string,
) {
	cityBreakdown := make(map[string]int, len(req.Cities))
	for _, city := range req.Cities {
		count := 0
		for _, v := range run.Venues {
			if strings.Contains(v.Location.Locality, city) ||
				strings.Contains(v.Location.FormattedAddress, city) {
				count++
			}
		}
		cityBreakdown[city] = count
	}

	categoryBreakdown := make(map[string]int, len(req.Categories))
	for _, category := range req.Categories {
		count := 0
		for _, a := range activities {
			if a.Category == category {
				count++
			}
		}
		categoryBreakdown[category] = count
	}

	stats := &domain.ImportStats{
		RunID:             runID,
		TotalImported:     run.Total,
		Successful:        insertedCount,
		Failed:            run.Failed + len(insertErrors),
		CityBreakdown:     cityBreakdown,
		CategoryBreakdown: categoryBreakdown,
	}

	if err := uc.statsRepo.InsertRunStats(ctx, stats); err != nil {
		uc.logger.Error("Failed to record import stats",
			zap.String("run_id", runID),
			zap.Error(err))
	}
}
