package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID reads one recurring schedule by primary key.
func (r ScheduleRepository) GetByID(ctx context.Context, id int64) (models.RecurringSchedule, error) {
	db := r.db()
	if db == nil {
		return models.RecurringSchedule{}, domain.Internal(fmt.Errorf("database not connected"))
	}

	var s models.RecurringSchedule
	err := db.QueryRowContext(ctx, `
		SELECT
			id,
			COALESCE(route_from, ''),
			COALESCE(route_to, ''),
			COALESCE(TIME_FORMAT(departure_time, '%H:%i'), ''),
			COALESCE(recurrence_rule, ''),
			enabled,
			updated_at
		FROM recurring_schedules
		WHERE id=? LIMIT 1`, id).Scan(
		&s.ID,
		&s.RouteFrom,
		&s.RouteTo,
		&s.DepartureTime,
		&s.RecurrenceRule,
		&s.Enabled,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RecurringSchedule{}, domain.NotFound("recurring schedule")
	}
	if err != nil {
		return models.RecurringSchedule{}, domain.Internal(fmt.Errorf("get schedule %d: %w", id, err))
	}
	return s, nil
}

// Disable clears the enabled flag with a single keyed UPDATE and returns the
// row as stored afterwards. Disabling an already disabled schedule succeeds;
// an unknown id is not found and never creates a row.
func (r ScheduleRepository) Disable(ctx context.Context, id int64) (models.RecurringSchedule, error) {
	if id <= 0 {
		return models.RecurringSchedule{}, domain.Validation("id", "must be a positive integer")
	}
	db := r.db()
	if db == nil {
		return models.RecurringSchedule{}, domain.Internal(fmt.Errorf("database not connected"))
	}

	// MySQL reports 0 affected rows for an unchanged row, so existence is
	// decided by the read below, not by RowsAffected.
	if _, err := db.ExecContext(ctx,
		`UPDATE recurring_schedules SET enabled=0, updated_at=NOW() WHERE id=?`, id); err != nil {
		return models.RecurringSchedule{}, domain.Internal(fmt.Errorf("disable schedule %d: %w", id, err))
	}
	return r.GetByID(ctx, id)
}
