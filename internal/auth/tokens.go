package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

var errInvalidToken = errors.New("invalid token")

// Claims is the JWT payload of both token kinds.
type Claims struct {
	UserID        int64  `json:"uid"`
	Email         string `json:"email"`
	IsAdmin       bool   `json:"adm"`
	EmailVerified bool   `json:"evf"`
	TokenType     string `json:"typ"`
	jwt.RegisteredClaims
}

func (c *Claims) principal() domain.Principal {
	return domain.Principal{
		UserID:        c.UserID,
		Email:         c.Email,
		IsAdmin:       c.IsAdmin,
		EmailVerified: c.EmailVerified,
	}
}

// UserLoader reloads the account behind a refresh token.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
}

// TokenConfig holds signing material and lifetimes.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenService issues, verifies, refreshes and revokes the access/refresh pair.
type TokenService struct {
	cfg     TokenConfig
	users   UserLoader
	revoker Revoker
	now     func() time.Time
}

// NewTokenService validates cfg. users may be nil, in which case a refresh
// trusts the identity carried by the refresh token.
func NewTokenService(cfg TokenConfig, users UserLoader, revoker Revoker) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}
	if revoker == nil {
		revoker = NewMemoryRevoker()
	}
	return &TokenService{cfg: cfg, users: users, revoker: revoker, now: time.Now}, nil
}

func principalOf(u models.User) domain.Principal {
	return domain.Principal{
		UserID:        u.ID,
		Email:         u.Email,
		IsAdmin:       u.IsAdmin(),
		EmailVerified: u.EmailVerified,
	}
}

func (s *TokenService) mint(p domain.Principal, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:        p.UserID,
		Email:         p.Email,
		IsAdmin:       p.IsAdmin,
		EmailVerified: p.EmailVerified,
		TokenType:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

// parse verifies signature, issuer, lifetime and type. A store failure while
// checking revocation is returned as an internal error, everything else as
// errInvalidToken.
func (s *TokenService) parse(ctx context.Context, raw, typ string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if claims.TokenType != typ || claims.ID == "" {
		return nil, fmt.Errorf("%w: expected %s token", errInvalidToken, typ)
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: revoked", errInvalidToken)
	}
	return claims, nil
}

// IssueTokens mints both tokens for user and stores them in the session.
func (s *TokenService) IssueTokens(sess Session, user models.User) (domain.Principal, error) {
	p := principalOf(user)
	access, err := s.mint(p, typeAccess, s.cfg.AccessTTL)
	if err != nil {
		return domain.Principal{}, domain.Internal(err)
	}
	refresh, err := s.mint(p, typeRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return domain.Principal{}, domain.Internal(err)
	}
	sess.SetCookie(AccessCookie, access, s.cfg.AccessTTL)
	sess.SetCookie(RefreshCookie, refresh, s.cfg.RefreshTTL)
	return p, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token.
// The refresh token itself is not rotated. On failure the session is left
// untouched.
func (s *TokenService) RefreshAccessToken(ctx context.Context, sess Session) (string, error) {
	invalid := domain.InvalidCredentials("refresh token invalid or expired")

	raw, ok := sess.Cookie(RefreshCookie)
	if !ok {
		return "", invalid
	}
	claims, err := s.parse(ctx, raw, typeRefresh)
	if err != nil {
		if errors.Is(err, errInvalidToken) {
			return "", invalid
		}
		return "", err
	}

	p := claims.principal()
	if s.users != nil {
		user, err := s.users.GetByID(ctx, claims.UserID)
		switch {
		case domain.IsNotFound(err):
			return "", invalid
		case err != nil:
			return "", domain.Internal(err)
		case !user.Active():
			return "", invalid
		}
		p = principalOf(user)
	}

	access, err := s.mint(p, typeAccess, s.cfg.AccessTTL)
	if err != nil {
		return "", domain.Internal(err)
	}
	sess.SetCookie(AccessCookie, access, s.cfg.AccessTTL)
	return access, nil
}

func accessTokenFrom(sess Session) (string, bool) {
	if v, ok := sess.Cookie(AccessCookie); ok {
		return v, true
	}
	if b := sess.BearerToken(); b != "" {
		return b, true
	}
	return "", false
}

// UserFromToken decodes the current access token into a principal.
func (s *TokenService) UserFromToken(ctx context.Context, sess Session) (domain.Principal, error) {
	raw, ok := accessTokenFrom(sess)
	if !ok {
		return domain.Principal{}, domain.Unauthorized("Unauthorized: no session")
	}
	claims, err := s.parse(ctx, raw, typeAccess)
	if err != nil {
		if errors.Is(err, errInvalidToken) {
			return domain.Principal{}, domain.Unauthorized("Unauthorized: invalid or expired session")
		}
		return domain.Principal{}, err
	}
	return claims.principal(), nil
}

// ClearAuthTokens revokes whatever tokens the session still carries and
// expires both cookies. Safe to call when no tokens are present.
func (s *TokenService) ClearAuthTokens(ctx context.Context, sess Session) error {
	var firstErr error
	revoke := func(raw, typ string) {
		claims, err := s.parse(ctx, raw, typ)
		if err != nil {
			// unusable tokens need no revocation
			return
		}
		if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil && firstErr == nil {
			firstErr = domain.Internal(err)
		}
	}
	if raw, ok := accessTokenFrom(sess); ok {
		revoke(raw, typeAccess)
	}
	if raw, ok := sess.Cookie(RefreshCookie); ok {
		revoke(raw, typeRefresh)
	}

	sess.ClearCookie(AccessCookie)
	sess.ClearCookie(RefreshCookie)
	return firstErr
}
