package revenue

import (
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func row(id int64, date, from, to string, amount float64) models.RevenueRow {
	return models.RevenueRow{BookingID: id, TripDate: day(date), RouteFrom: from, RouteTo: to, Amount: amount}
}

func TestParseGroupBy(t *testing.T) {
	for in, want := range map[string]Granularity{"": Day, "day": Day, "WEEK": Week, " month ": Month} {
		got, err := ParseGroupBy(in)
		if err != nil || got != want {
			t.Fatalf("ParseGroupBy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseGroupBy("year"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for year, got %v", err)
	}
}

func TestParseLimit(t *testing.T) {
	if n, err := ParseLimit(""); err != nil || n != DefaultRouteLimit {
		t.Fatalf("default limit = %d, %v", n, err)
	}
	if n, err := ParseLimit("1000"); err != nil || n != MaxRouteLimit {
		t.Fatalf("limit not capped: %d, %v", n, err)
	}
	for _, bad := range []string{"0", "-3", "ten"} {
		if _, err := ParseLimit(bad); !domain.IsValidation(err) {
			t.Fatalf("ParseLimit(%q) expected validation error, got %v", bad, err)
		}
	}
}

func TestBucketStartWeekIsMonday(t *testing.T) {
	// 2025-03-09 is a Sunday; its ISO week starts Monday 2025-03-03.
	if got := BucketStart(day("2025-03-09"), Week); !got.Equal(day("2025-03-03")) {
		t.Fatalf("week start = %v", got)
	}
	if got := BucketStart(day("2025-03-03"), Week); !got.Equal(day("2025-03-03")) {
		t.Fatalf("monday should be its own week start, got %v", got)
	}
	if got := BucketStart(day("2025-03-31"), Month); !got.Equal(day("2025-03-01")) {
		t.Fatalf("month start = %v", got)
	}
}

func TestTrendsDaily(t *testing.T) {
	rows := []models.RevenueRow{
		row(1, "2025-03-02", "A", "B", 100),
		row(2, "2025-03-01", "A", "B", 40.10),
		row(3, "2025-03-02", "A", "C", 60.25),
	}
	got := Trends(rows, Day)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %+v", got)
	}
	if got[0].Period != "2025-03-01" || got[0].Total != 40.10 || got[0].Bookings != 1 {
		t.Fatalf("first bucket %+v", got[0])
	}
	if got[1].Period != "2025-03-02" || got[1].Total != 160.25 || got[1].Bookings != 2 {
		t.Fatalf("second bucket %+v", got[1])
	}
}

func TestTrendsNoDoubleCounting(t *testing.T) {
	rows := []models.RevenueRow{
		row(1, "2025-02-28", "A", "B", 10),
		row(2, "2025-03-01", "A", "B", 20),
		row(3, "2025-03-03", "A", "B", 30),
		row(4, "2025-03-31", "A", "B", 40),
	}
	for _, g := range []Granularity{Day, Week, Month} {
		total, count := 0.0, 0
		buckets := Trends(rows, g)
		for i, b := range buckets {
			total += b.Total
			count += b.Bookings
			if i > 0 && buckets[i-1].Start >= b.Start {
				t.Fatalf("%s buckets out of order: %+v", g, buckets)
			}
		}
		if total != 100 || count != 4 {
			t.Fatalf("%s: total %v count %d", g, total, count)
		}
	}

	months := Trends(rows, Month)
	if len(months) != 2 || months[0].Period != "2025-02" || months[1].Period != "2025-03" {
		t.Fatalf("unexpected month buckets %+v", months)
	}
	weeks := Trends(rows, Week)
	if len(weeks) != 3 || weeks[0].Period != "2025-W09" {
		t.Fatalf("unexpected week buckets %+v", weeks)
	}
}

func TestTrendsEmpty(t *testing.T) {
	got := Trends(nil, Day)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestByRouteLimitAndTies(t *testing.T) {
	rows := []models.RevenueRow{
		row(1, "2025-03-01", "Kochi", "Munnar", 300),
		row(2, "2025-03-01", "Delhi", "Agra", 200),
		row(3, "2025-03-02", "Agra", "Delhi", 200),
		row(4, "2025-03-02", "Kochi", "Munnar", 50),
		row(5, "2025-03-03", "Pune", "Goa", 200),
		row(6, "2025-03-03", "Goa", "Pune", 10),
	}
	got := ByRoute(rows, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(got))
	}
	want := []string{"Kochi → Munnar", "Agra → Delhi", "Delhi → Agra"}
	for i, w := range want {
		if got[i].Route != w {
			t.Fatalf("position %d = %q, want %q (%+v)", i, got[i].Route, w, got)
		}
	}
	if got[0].Total != 350 || got[0].Bookings != 2 {
		t.Fatalf("top route %+v", got[0])
	}

	// stable across input order
	reversed := make([]models.RevenueRow, len(rows))
	for i := range rows {
		reversed[len(rows)-1-i] = rows[i]
	}
	again := ByRoute(reversed, 3)
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("ordering not deterministic: %+v vs %+v", got, again)
		}
	}
}

func TestByRouteEmpty(t *testing.T) {
	got := ByRoute(nil, 10)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
