package repositories

import (
	"context"
	"testing"
	"time"

	"travelbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingColumns = []string{
	"id", "customer_id", "route_from", "route_to", "trip_date", "trip_time",
	"fare", "payment_status", "payment_method", "created_at",
}

func TestBookingGetByIDFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM bookings WHERE id=\\? LIMIT 1").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(42, 7, "Kochi", "Munnar", "2025-01-10", "08:30", 1250.5, "paid", "upi", created))

	b, err := BookingRepository{DB: db}.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if b.ID != 42 || b.CustomerID != 7 || b.RouteFrom != "Kochi" || b.RouteTo != "Munnar" || b.Fare != 1250.5 {
		t.Fatalf("unexpected booking %+v", b)
	}
	if !b.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v", b.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE id=\\?").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err = BookingRepository{DB: db}.GetByID(context.Background(), 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingGetByIDRejectsNonPositive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if _, err := (BookingRepository{DB: db}).GetByID(context.Background(), 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store touched: %v", err)
	}
}

func TestListPaidInRangeAppliesBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("payment_status IN \\(\\?,\\?\\).*trip_date >= \\?.*trip_date <= \\?").
		WithArgs("paid", "completed", "2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_from", "route_to", "trip_date", "fare"}).
			AddRow(1, "A", "B", from, 100.0).
			AddRow(2, "A", "C", to, 50.0))

	rows, err := BookingRepository{DB: db}.ListPaidInRange(context.Background(), domain.DateRange{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListPaidInRange error: %v", err)
	}
	if len(rows) != 2 || rows[1].Amount != 50 || rows[1].RouteTo != "C" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPaidInRangeOpenEnded(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").
		WithArgs("paid", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_from", "route_to", "trip_date", "fare"}))

	rows, err := BookingRepository{DB: db}.ListPaidInRange(context.Background(), domain.DateRange{})
	if err != nil {
		t.Fatalf("ListPaidInRange error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}
