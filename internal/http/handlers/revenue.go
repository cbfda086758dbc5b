package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/revenue"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

func dateRangeFromQuery(c *gin.Context) (domain.DateRange, error) {
	from, err := utils.ParseOptionalDate(c.Query("dateFrom"))
	if err != nil {
		return domain.DateRange{}, domain.Validation("dateFrom", "must be YYYY-MM-DD")
	}
	to, err := utils.ParseOptionalDate(c.Query("dateTo"))
	if err != nil {
		return domain.DateRange{}, domain.Validation("dateTo", "must be YYYY-MM-DD")
	}
	rng := domain.DateRange{From: from, To: to}
	return rng, rng.Validate()
}

// GET /api/admin/revenue/by-date?dateFrom=&dateTo=&groupBy=day|week|month
func (h *Handlers) RevenueByDate(c *gin.Context) {
	rng, err := dateRangeFromQuery(c)
	if err != nil {
		RespondDomainError(c, "revenue", "by_date", err)
		return
	}
	g, err := revenue.ParseGroupBy(c.Query("groupBy"))
	if err != nil {
		RespondDomainError(c, "revenue", "by_date", err)
		return
	}
	buckets, err := h.Revenue.Trends(c.Request.Context(), rng, g)
	if err != nil {
		RespondDomainError(c, "revenue", "by_date", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": buckets})
}

// GET /api/admin/revenue/by-route?dateFrom=&dateTo=&limit=
func (h *Handlers) RevenueByRoute(c *gin.Context) {
	rng, err := dateRangeFromQuery(c)
	if err != nil {
		RespondDomainError(c, "revenue", "by_route", err)
		return
	}
	limit, err := revenue.ParseLimit(c.Query("limit"))
	if err != nil {
		RespondDomainError(c, "revenue", "by_route", err)
		return
	}
	totals, err := h.Revenue.ByRoute(c.Request.Context(), rng, limit)
	if err != nil {
		RespondDomainError(c, "revenue", "by_route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": totals})
}
