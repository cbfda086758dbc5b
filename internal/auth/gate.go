package auth

import (
	"context"

	"travelbook/internal/domain"
)

// Gate asserts admin privilege for the caller of a session.
type Gate struct {
	Tokens *TokenService
}

// RequireAdmin returns the admin principal, an Unauthorized error when the
// session has no valid access token, or a Forbidden error when the caller is
// not an admin. Store failures come back as internal errors.
func (g Gate) RequireAdmin(ctx context.Context, sess Session) (domain.Principal, error) {
	p, err := g.Tokens.UserFromToken(ctx, sess)
	if err != nil {
		return domain.Principal{}, err
	}
	if !p.IsAdmin {
		return domain.Principal{}, domain.Forbidden("Forbidden: admin privilege required")
	}
	return p, nil
}
