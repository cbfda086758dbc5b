package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/utils"
)

// PaidStatuses are the payment states that count as revenue.
var PaidStatuses = []string{"paid", "completed"}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const selectBooking = `
	SELECT
		id,
		COALESCE(customer_id, 0),
		COALESCE(route_from, ''),
		COALESCE(route_to, ''),
		COALESCE(DATE_FORMAT(trip_date, '%Y-%m-%d'), ''),
		COALESCE(TIME_FORMAT(trip_time, '%H:%i'), ''),
		COALESCE(fare, 0),
		COALESCE(payment_status, ''),
		COALESCE(payment_method, ''),
		created_at
	FROM bookings`

// GetByID returns the full booking record, or a not-found error.
func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.Validation("id", "must be a positive integer")
	}
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.Internal(fmt.Errorf("database not connected"))
	}

	var b models.Booking
	err := db.QueryRowContext(ctx, selectBooking+` WHERE id=? LIMIT 1`, id).Scan(
		&b.ID,
		&b.CustomerID,
		&b.RouteFrom,
		&b.RouteTo,
		&b.TripDate,
		&b.TripTime,
		&b.Fare,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFound("booking")
	}
	if err != nil {
		return models.Booking{}, domain.Internal(fmt.Errorf("get booking %d: %w", id, err))
	}
	return b, nil
}

// ListPaidInRange returns paid bookings whose trip date falls inside rng
// (inclusive), oldest first.
func (r BookingRepository) ListPaidInRange(ctx context.Context, rng domain.DateRange) ([]models.RevenueRow, error) {
	db := r.db()
	if db == nil {
		return nil, domain.Internal(fmt.Errorf("database not connected"))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(PaidStatuses)), ",")
	where := []string{"payment_status IN (" + placeholders + ")", "trip_date IS NOT NULL"}
	args := make([]any, 0, len(PaidStatuses)+2)
	for _, s := range PaidStatuses {
		args = append(args, s)
	}
	if rng.From != nil {
		where = append(where, "trip_date >= ?")
		args = append(args, utils.FormatDate(*rng.From))
	}
	if rng.To != nil {
		where = append(where, "trip_date <= ?")
		args = append(args, utils.FormatDate(*rng.To))
	}

	query := `
		SELECT id, COALESCE(route_from, ''), COALESCE(route_to, ''), trip_date, COALESCE(fare, 0)
		FROM bookings
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY trip_date ASC, id ASC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.Internal(fmt.Errorf("list paid bookings: %w", err))
	}
	defer rows.Close()

	out := []models.RevenueRow{}
	for rows.Next() {
		var rec models.RevenueRow
		if err := rows.Scan(&rec.BookingID, &rec.RouteFrom, &rec.RouteTo, &rec.TripDate, &rec.Amount); err != nil {
			return nil, domain.Internal(fmt.Errorf("scan paid booking: %w", err))
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(fmt.Errorf("iterate paid bookings: %w", err))
	}
	return out, nil
}
