package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	if details != nil {
		payload["details"] = details
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "validation_error", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondBindError(c, err)
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return 0, domain.Validation(name, "must be a positive integer")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation(name, "must be a positive integer")
	}
	return id, nil
}

// actor names the admin behind the request for audit lines.
func actor(c *gin.Context) string {
	if p, ok := middleware.GetPrincipal(c); ok {
		return "user " + strconv.FormatInt(p.UserID, 10)
	}
	return "unknown"
}
