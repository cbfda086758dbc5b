package models

import "time"

// RecurringSchedule is a repeating departure on a route.
type RecurringSchedule struct {
	ID             int64     `json:"id"`
	RouteFrom      string    `json:"routeFrom"`
	RouteTo        string    `json:"routeTo"`
	DepartureTime  string    `json:"departureTime"`
	RecurrenceRule string    `json:"recurrenceRule"`
	Enabled        bool      `json:"enabled"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
