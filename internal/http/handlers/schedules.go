package handlers

import (
	"fmt"
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// PATCH /api/admin/recurring-schedules/:id/disable
func (h *Handlers) DisableRecurringSchedule(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		RespondDomainError(c, "schedule", "disable", err)
		return
	}
	s, err := h.Schedules.Disable(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "schedule", "disable", err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "schedule", "disable",
		fmt.Sprintf("recurring schedule %d disabled by %s", s.ID, actor(c)))
	c.JSON(http.StatusOK, gin.H{"schedule": s})
}
