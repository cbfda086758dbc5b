package domain

import "time"

// Principal is the authenticated caller derived from a valid access token.
type Principal struct {
	UserID        int64  `json:"id"`
	Email         string `json:"email"`
	IsAdmin       bool   `json:"isAdmin"`
	EmailVerified bool   `json:"emailVerified"`
}

// DateRange is an inclusive range of calendar dates; nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Validate rejects a range whose start is after its end.
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return Validation("dateFrom", "must not be after dateTo")
	}
	return nil
}
