// Package revenue aggregates paid bookings into date buckets or per-route totals.
package revenue

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

// Granularity is the width of a date bucket.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

const (
	DefaultRouteLimit = 10
	MaxRouteLimit     = 100
)

// ParseGroupBy accepts day, week or month (case-insensitive); empty means day.
func ParseGroupBy(raw string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(raw))); g {
	case "":
		return Day, nil
	case Day, Week, Month:
		return g, nil
	default:
		return "", domain.Validation("groupBy", "must be one of day, week, month")
	}
}

// ParseLimit parses the route limit; empty means DefaultRouteLimit.
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRouteLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domain.Validation("limit", "must be a positive integer")
	}
	if n > MaxRouteLimit {
		n = MaxRouteLimit
	}
	return n, nil
}

// Bucket is the revenue of one period.
type Bucket struct {
	Period   string  `json:"period"`
	Start    string  `json:"start"`
	Total    float64 `json:"total"`
	Bookings int     `json:"bookings"`
}

// RouteTotal is the revenue of one route.
type RouteTotal struct {
	Route     string  `json:"route"`
	RouteFrom string  `json:"routeFrom"`
	RouteTo   string  `json:"routeTo"`
	Total     float64 `json:"total"`
	Bookings  int     `json:"bookings"`
}

// BucketStart truncates t to the first day of its bucket. Weeks start on Monday.
func BucketStart(t time.Time, g Granularity) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case Week:
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case Month:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

func periodLabel(start time.Time, g Granularity) string {
	switch g {
	case Week:
		y, w := start.ISOWeek()
		return strconv.Itoa(y) + "-W" + twoDigits(w)
	case Month:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Trends sums rows per bucket, chronologically. Each row lands in exactly one bucket.
func Trends(rows []models.RevenueRow, g Granularity) []Bucket {
	acc := map[time.Time]*Bucket{}
	for _, r := range rows {
		start := BucketStart(r.TripDate, g)
		b, ok := acc[start]
		if !ok {
			b = &Bucket{Period: periodLabel(start, g), Start: start.Format("2006-01-02")}
			acc[start] = b
		}
		b.Total += r.Amount
		b.Bookings++
	}

	starts := make([]time.Time, 0, len(acc))
	for s := range acc {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]Bucket, 0, len(starts))
	for _, s := range starts {
		b := *acc[s]
		b.Total = roundCents(b.Total)
		out = append(out, b)
	}
	return out
}

// ByRoute sums rows per route, highest total first, ties by route name, and
// keeps at most limit entries.
func ByRoute(rows []models.RevenueRow, limit int) []RouteTotal {
	if limit <= 0 {
		limit = DefaultRouteLimit
	}
	acc := map[string]*RouteTotal{}
	for _, r := range rows {
		key := models.RouteKey(r.RouteFrom, r.RouteTo)
		rt, ok := acc[key]
		if !ok {
			rt = &RouteTotal{Route: key, RouteFrom: r.RouteFrom, RouteTo: r.RouteTo}
			acc[key] = rt
		}
		rt.Total += r.Amount
		rt.Bookings++
	}

	out := make([]RouteTotal, 0, len(acc))
	for _, rt := range acc {
		rt.Total = roundCents(rt.Total)
		out = append(out, *rt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Route < out[j].Route
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
