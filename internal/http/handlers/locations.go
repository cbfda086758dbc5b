package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"travelbook/internal/http/middleware"
	"travelbook/internal/locations"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) places() *locations.Directory {
	if h.Places != nil {
		return h.Places
	}
	return locations.Default
}

// GET /api/states?q=
func (h *Handlers) SearchStates(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			utils.LogFailure(middleware.GetRequestID(c), "locations", "search_states", fmt.Errorf("panic: %v", r))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "failed to load states",
				"states": []locations.StateOption{},
			})
		}
	}()
	c.JSON(http.StatusOK, gin.H{"states": h.places().SearchStates(c.Query("q"))})
}

// GET /api/locations?q=&limit=
func (h *Handlers) SearchLocations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "validation_error", "limit: must be an integer", nil)
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"locations": h.places().SearchPlaces(c.Query("q"), limit)})
}
