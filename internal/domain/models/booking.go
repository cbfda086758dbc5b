package models

import "time"

// Booking is the full booking record as stored. Created by the customer
// booking flow and never mutated by the admin surface.
type Booking struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	RouteFrom     string    `json:"routeFrom"`
	RouteTo       string    `json:"routeTo"`
	TripDate      string    `json:"tripDate"`
	TripTime      string    `json:"tripTime"`
	Fare          float64   `json:"fare"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RouteKey joins origin and destination into a route identifier.
func RouteKey(from, to string) string {
	return from + " → " + to
}

// RevenueRow is the projection of a paid booking used for revenue aggregation.
type RevenueRow struct {
	BookingID int64
	RouteFrom string
	RouteTo   string
	TripDate  time.Time
	Amount    float64
}
