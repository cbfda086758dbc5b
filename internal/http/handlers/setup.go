package handlers

import (
	"net/http"

	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/setup/otp-table
func (h *Handlers) SetupOTPTable(c *gin.Context) {
	created, err := h.Setup.EnsureOTPTable(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "setup", "otp_table", err)
		return
	}
	msg := "otp_codes table already exists"
	if created {
		msg = "otp_codes table created"
		utils.LogEvent(middleware.GetRequestID(c), "setup", "otp_table", msg+" by "+actor(c))
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
