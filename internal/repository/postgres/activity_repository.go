package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
	"github.com/activity-import-service/internal/pkg/errors"
)

// activityColumns are the insertable columns, in placeholder order.
var activityColumns = []string{
	"name", "description", "category", "subcategory",
	"themes", "age_groups", "min_age", "max_age",
	"address", "city_id", "latitude", "longitude",
	"phone", "email", "website",
	"rating", "review_count", "price_range", "hours",
	"amenities", "languages", "religious_affiliation", "accreditation",
	"capacity", "teacher_student_ratio",
	"foursquare_id", "featured", "verified",
}

type activityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewActivityRepository(db *DB) repository.ActivityRepository {
	return &activityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// UpsertBatch inserts activities in one multi-row statement. Rows whose
// foursquare_id already exists are ignored, which makes re-imports
// idempotent. Returns the number of rows actually inserted.
func (r *activityRepository) UpsertBatch(ctx context.Context, activities []domain.Activity) (int, error) {
	if len(activities) == 0 {
		return 0, nil
	}

	query := buildActivityUpsertQuery(len(activities))

	args := make([]interface{}, 0, len(activities)*len(activityColumns))
	for _, a := range activities {
		args = append(args,
			a.Name, a.Description, a.Category, a.Subcategory,
			a.Themes, a.AgeGroups, a.MinAgeMonths, a.MaxAgeMonths,
			a.Address, a.CityID, a.Latitude, a.Longitude,
			a.Phone, a.Email, a.Website,
			a.Rating, a.ReviewCount, a.PriceRange, a.Hours,
			a.Amenities, a.Languages, a.ReligiousAffil, a.Accreditation,
			a.Capacity, a.TeacherStudentRatio,
			a.FoursquareID, a.Featured, a.Verified,
		)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to upsert activity batch",
			zap.Int("batch_size", len(activities)),
			zap.Error(err))
		return 0, fmt.Errorf("upsert activities: %w", err)
	}
	defer rows.Close()

	inserted := 0
	for rows.Next() {
		inserted++
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Activity upsert rows error", zap.Error(err))
		return inserted, errors.ErrDatabaseError
	}

	r.logger.Debug("Activity batch upserted",
		zap.Int("batch_size", len(activities)),
		zap.Int("inserted", inserted))

	return inserted, nil
}

// buildActivityUpsertQuery renders the multi-row insert with a conflict
// clause on foursquare_id and RETURNING id so callers can count the rows
// that were actually written.
func buildActivityUpsertQuery(rowCount int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO activities (")
	b.WriteString(strings.Join(activityColumns, ", "))
	b.WriteString(") VALUES ")

	colCount := len(activityColumns)
	for row := 0; row < rowCount; row++ {
		if row > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for col := 0; col < colCount; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", row*colCount+col+1)
		}
		b.WriteByte(')')
	}

	b.WriteString(" ON CONFLICT (foursquare_id) DO NOTHING RETURNING id")
	return b.String()
}
