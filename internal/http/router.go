package api

import (
	stdhttp "net/http"

	"travelbook/internal/auth"
	intconfig "travelbook/internal/config"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"
	"travelbook/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg intconfig.ServerConfig, hs *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), gin.Recovery(), middleware.CORS(cfg.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logging.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", hs.Health)
		api.GET("/db-check", hs.DBCheck)

		// Locations
		api.GET("/states", hs.SearchStates)
		api.GET("/locations", hs.SearchLocations)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimit(rateLimiter(cfg.AuthRatePerMinute)))
		authGroup.POST("/login", hs.Login)
		authGroup.POST("/logout", hs.Logout)
		authGroup.POST("/refresh", hs.Refresh)

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(auth.Gate{Tokens: hs.Tokens}, hs.Cookies))
		admin.GET("/bookings/:id", hs.GetAdminBooking)
		admin.GET("/bookings/:id/ticket", hs.GetBookingTicket)
		admin.PATCH("/recurring-schedules/:id/disable", hs.DisableRecurringSchedule)
		admin.GET("/revenue/by-date", hs.RevenueByDate)
		admin.GET("/revenue/by-route", hs.RevenueByRoute)
		admin.POST("/setup/otp-table", hs.SetupOTPTable)
	}

	return r
}

// rateLimiter returns nil (no limit) when perMinute is zero.
func rateLimiter(perMinute int) *middleware.IPRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return middleware.NewIPRateLimiter(perMinute)
}
