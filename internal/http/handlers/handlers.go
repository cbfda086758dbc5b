package handlers

import (
	"context"
	"database/sql"

	"travelbook/internal/auth"
	"travelbook/internal/domain/models"
	"travelbook/internal/locations"
	"travelbook/internal/repositories"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// ScheduleDisabler turns a recurring schedule off.
type ScheduleDisabler interface {
	Disable(ctx context.Context, id int64) (models.RecurringSchedule, error)
}

// Handlers carries the collaborators of the route handlers.
type Handlers struct {
	DB        *sql.DB
	Bookings  services.BookingReader
	Schedules ScheduleDisabler
	Revenue   services.RevenueService
	Tickets   services.TicketService
	Setup     services.SetupService
	Accounts  services.AuthService
	Tokens    *auth.TokenService
	Cookies   auth.CookieOptions
	Places    *locations.Directory
}

// New wires the repositories and services on db.
func New(db *sql.DB, tokens *auth.TokenService, cookies auth.CookieOptions) *Handlers {
	bookings := repositories.BookingRepository{DB: db}
	return &Handlers{
		DB:        db,
		Bookings:  bookings,
		Schedules: repositories.ScheduleRepository{DB: db},
		Revenue:   services.RevenueService{Source: bookings},
		Tickets:   services.TicketService{Bookings: bookings},
		Setup:     services.SetupService{DB: db},
		Accounts:  services.AuthService{Users: repositories.UserRepository{DB: db}},
		Tokens:    tokens,
		Cookies:   cookies,
		Places:    locations.Default,
	}
}

func (h *Handlers) session(c *gin.Context) *auth.GinSession {
	return auth.NewGinSession(c, h.Cookies)
}
