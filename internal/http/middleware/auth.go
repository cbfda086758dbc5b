package middleware

import (
	"travelbook/internal/auth"
	"travelbook/internal/domain"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAdmin runs the admin gate before the wrapped handlers. On success
// the principal is stored on the context; otherwise the request is aborted
// with the mapped status and no handler runs.
func RequireAdmin(gate auth.Gate, opts auth.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.NewGinSession(c, opts)
		p, err := gate.RequireAdmin(c.Request.Context(), sess)
		if err != nil {
			reqID := GetRequestID(c)
			kind := domain.KindOf(err)
			if kind == domain.KindInternal {
				utils.LogFailure(reqID, "auth", "require_admin", err)
			}
			c.AbortWithStatusJSON(kind.HTTPStatus(), gin.H{
				"error":      domain.PublicMessage(err),
				"code":       kind.Code(),
				"request_id": reqID,
			})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by RequireAdmin.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
