package handlers

import (
	"fmt"
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/bookings/:id
func (h *Handlers) GetAdminBooking(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondDomainError(c, "booking", "get", err)
		return
	}
	b, err := h.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "booking", "get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GET /api/admin/bookings/:id/ticket
func (h *Handlers) GetBookingTicket(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondDomainError(c, "ticket", "generate", err)
		return
	}
	pdf, filename, err := h.Tickets.Generate(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "ticket", "generate", err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "ticket", "generate", fmt.Sprintf("booking_id=%d by %s", id, actor(c)))
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
