package services

import (
	"context"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/revenue"
)

// RevenueSource yields the paid bookings inside a date range.
type RevenueSource interface {
	ListPaidInRange(ctx context.Context, rng domain.DateRange) ([]models.RevenueRow, error)
}

type RevenueService struct {
	Source RevenueSource
}

func (s RevenueService) source() RevenueSource {
	if s.Source != nil {
		return s.Source
	}
	return repositories.BookingRepository{}
}

// Trends returns revenue per date bucket inside rng.
func (s RevenueService) Trends(ctx context.Context, rng domain.DateRange, g revenue.Granularity) ([]revenue.Bucket, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.source().ListPaidInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	return revenue.Trends(rows, g), nil
}

// ByRoute returns the top routes by revenue inside rng.
func (s RevenueService) ByRoute(ctx context.Context, rng domain.DateRange, limit int) ([]revenue.RouteTotal, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.source().ListPaidInRange(ctx, rng)
	if err != nil {
		return nil, err
	}
	return revenue.ByRoute(rows, limit), nil
}
