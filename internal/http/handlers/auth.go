package handlers

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, "auth", "login", err)
		return
	}
	if _, err := h.Tokens.IssueTokens(h.session(c), user); err != nil {
		RespondDomainError(c, "auth", "login", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user logged in")
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user.ToPublic()})
}

// POST /api/auth/logout
// Cookies are expired even when revocation fails.
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Tokens.ClearAuthTokens(c.Request.Context(), h.session(c)); err != nil {
		RespondDomainError(c, "auth", "logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// POST /api/auth/refresh
func (h *Handlers) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.session(c)

	if _, err := h.Tokens.RefreshAccessToken(ctx, sess); err != nil {
		RespondDomainError(c, "auth", "refresh", err)
		return
	}

	p, err := h.Tokens.UserFromToken(ctx, sess)
	if err != nil {
		// a token minted a moment ago must decode
		RespondDomainError(c, "auth", "refresh", &domain.Error{Kind: domain.KindInternal, Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token refreshed", "user": p})
}
