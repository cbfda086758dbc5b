package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type fakeUsers map[int64]models.User

func (f fakeUsers) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f[id]
	if !ok {
		return models.User{}, domain.NotFound("user")
	}
	return u, nil
}

type failingRevoker struct{}

func (failingRevoker) Revoke(context.Context, string, time.Time) error {
	return errors.New("store down")
}
func (failingRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }

var (
	adminUser = models.User{ID: 1, Email: "admin@example.com", Role: "admin", Status: "active", EmailVerified: true}
	plainUser = models.User{ID: 2, Email: "rider@example.com", Role: "user", Status: "active"}
)

func newTestService(t *testing.T, users UserLoader) *TokenService {
	t.Helper()
	svc, err := NewTokenService(TokenConfig{
		Secret:     []byte("0123456789abcdef0123456789abcdef"),
		Issuer:     "travelbook-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, users, NewMemoryRevoker())
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return svc
}

func TestIssueThenDecode(t *testing.T) {
	svc := newTestService(t, nil)
	sess := NewMemorySession(nil)

	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	if _, ok := sess.Cookie(RefreshCookie); !ok {
		t.Fatalf("refresh cookie not stored")
	}
	p, err := svc.UserFromToken(context.Background(), sess)
	if err != nil {
		t.Fatalf("UserFromToken error: %v", err)
	}
	want := domain.Principal{UserID: 1, Email: "admin@example.com", IsAdmin: true, EmailVerified: true}
	if p != want {
		t.Fatalf("principal = %+v, want %+v", p, want)
	}
}

func TestRefreshMintsNewAccessToken(t *testing.T) {
	svc := newTestService(t, fakeUsers{1: adminUser})
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	oldAccess, _ := sess.Cookie(AccessCookie)
	oldRefresh, _ := sess.Cookie(RefreshCookie)

	access, err := svc.RefreshAccessToken(context.Background(), sess)
	if err != nil {
		t.Fatalf("refresh error: %v", err)
	}
	if access == oldAccess {
		t.Fatalf("access token not renewed")
	}
	if got, _ := sess.Cookie(AccessCookie); got != access {
		t.Fatalf("new access token not stored")
	}
	if got, _ := sess.Cookie(RefreshCookie); got != oldRefresh {
		t.Fatalf("refresh token must not rotate")
	}
}

func TestRefreshPicksUpPrivilegeChanges(t *testing.T) {
	users := fakeUsers{1: adminUser}
	svc := newTestService(t, users)
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}

	demoted := adminUser
	demoted.Role = "user"
	users[1] = demoted

	if _, err := svc.RefreshAccessToken(context.Background(), sess); err != nil {
		t.Fatalf("refresh error: %v", err)
	}
	p, err := svc.UserFromToken(context.Background(), sess)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if p.IsAdmin {
		t.Fatalf("demoted user still admin after refresh")
	}
}

func TestRefreshExpiredLeavesSessionUntouched(t *testing.T) {
	svc := newTestService(t, fakeUsers{1: adminUser})
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	svc.now = time.Now
	before := map[string]string{}
	for _, name := range []string{AccessCookie, RefreshCookie} {
		before[name], _ = sess.Cookie(name)
	}

	_, err := svc.RefreshAccessToken(context.Background(), sess)
	if domain.KindOf(err) != domain.KindInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid or expired") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	for name, v := range before {
		if got, _ := sess.Cookie(name); got != v {
			t.Fatalf("%s changed on failed refresh", name)
		}
	}
}

func TestRefreshRejectsMissingAndWrongType(t *testing.T) {
	svc := newTestService(t, fakeUsers{1: adminUser})
	if _, err := svc.RefreshAccessToken(context.Background(), NewMemorySession(nil)); domain.KindOf(err) != domain.KindInvalidCredentials {
		t.Fatalf("missing refresh token: got %v", err)
	}

	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	access, _ := sess.Cookie(AccessCookie)
	swapped := NewMemorySession(map[string]string{RefreshCookie: access})
	if _, err := svc.RefreshAccessToken(context.Background(), swapped); domain.KindOf(err) != domain.KindInvalidCredentials {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestRefreshUnknownUser(t *testing.T) {
	svc := newTestService(t, fakeUsers{})
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, plainUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	if _, err := svc.RefreshAccessToken(context.Background(), sess); domain.KindOf(err) != domain.KindInvalidCredentials {
		t.Fatalf("expected invalid credentials for deleted user, got %v", err)
	}
}

func TestClearAuthTokensRevokes(t *testing.T) {
	svc := newTestService(t, fakeUsers{1: adminUser})
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	access, _ := sess.Cookie(AccessCookie)
	refresh, _ := sess.Cookie(RefreshCookie)

	if err := svc.ClearAuthTokens(context.Background(), sess); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	if _, ok := sess.Cookie(AccessCookie); ok {
		t.Fatalf("access cookie still present")
	}

	replay := NewMemorySession(map[string]string{AccessCookie: access, RefreshCookie: refresh})
	if _, err := svc.UserFromToken(context.Background(), replay); !domain.IsUnauthorized(err) {
		t.Fatalf("revoked access token accepted: %v", err)
	}
	if _, err := svc.RefreshAccessToken(context.Background(), replay); domain.KindOf(err) != domain.KindInvalidCredentials {
		t.Fatalf("revoked refresh token accepted: %v", err)
	}
}

func TestClearAuthTokensIdempotent(t *testing.T) {
	svc := newTestService(t, nil)
	sess := NewMemorySession(map[string]string{AccessCookie: "garbage"})
	for i := 0; i < 2; i++ {
		if err := svc.ClearAuthTokens(context.Background(), sess); err != nil {
			t.Fatalf("clear #%d error: %v", i+1, err)
		}
	}
}

func TestClearAuthTokensReportsStoreFailure(t *testing.T) {
	svc, err := NewTokenService(TokenConfig{
		Secret: []byte("0123456789abcdef0123456789abcdef"), AccessTTL: time.Minute, RefreshTTL: time.Hour,
	}, nil, failingRevoker{})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	sess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(sess, plainUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	err = svc.ClearAuthTokens(context.Background(), sess)
	if domain.KindOf(err) != domain.KindInternal || err == nil {
		t.Fatalf("expected internal error, got %v", err)
	}
	if _, ok := sess.Cookie(RefreshCookie); ok {
		t.Fatalf("cookies must be cleared even when revocation fails")
	}
}

func TestGateRequireAdmin(t *testing.T) {
	svc := newTestService(t, nil)
	gate := Gate{Tokens: svc}
	ctx := context.Background()

	if _, err := gate.RequireAdmin(ctx, NewMemorySession(nil)); !domain.IsUnauthorized(err) {
		t.Fatalf("no session: expected unauthorized, got %v", err)
	}

	userSess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(userSess, plainUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	_, err := gate.RequireAdmin(ctx, userSess)
	if !domain.IsForbidden(err) || !strings.Contains(err.Error(), "Forbidden") {
		t.Fatalf("non-admin: expected forbidden, got %v", err)
	}

	adminSess := NewMemorySession(nil)
	if _, err := svc.IssueTokens(adminSess, adminUser); err != nil {
		t.Fatalf("IssueTokens error: %v", err)
	}
	token, _ := adminSess.Cookie(AccessCookie)
	bearerOnly := NewMemorySession(nil)
	bearerOnly.Bearer = token
	p, err := gate.RequireAdmin(ctx, bearerOnly)
	if err != nil || p.UserID != adminUser.ID {
		t.Fatalf("bearer admin rejected: %+v %v", p, err)
	}
}

func TestMemoryRevokerExpiry(t *testing.T) {
	r := NewMemoryRevoker()
	base := time.Now()
	r.now = func() time.Time { return base }
	ctx := context.Background()

	if err := r.Revoke(ctx, "a", base.Add(time.Minute)); err != nil {
		t.Fatalf("revoke error: %v", err)
	}
	if ok, _ := r.IsRevoked(ctx, "a"); !ok {
		t.Fatalf("jti not revoked")
	}
	r.now = func() time.Time { return base.Add(2 * time.Minute) }
	if ok, _ := r.IsRevoked(ctx, "a"); ok {
		t.Fatalf("entry should expire with the token")
	}
}
