package auth

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Session is the per-request credential storage the token service reads and
// writes. It is passed explicitly to every call; nothing is kept globally.
type Session interface {
	// Cookie returns the current value, including values written earlier in
	// the same request.
	Cookie(name string) (string, bool)
	SetCookie(name, value string, ttl time.Duration)
	ClearCookie(name string)
	// BearerToken is the Authorization header token, if any.
	BearerToken() string
}

// CookieOptions are the attributes of every auth cookie.
type CookieOptions struct {
	Domain string
	Secure bool
}

// GinSession adapts a gin request/response pair.
type GinSession struct {
	c       *gin.Context
	opts    CookieOptions
	written map[string]string
	cleared map[string]bool
}

func NewGinSession(c *gin.Context, opts CookieOptions) *GinSession {
	return &GinSession{
		c:       c,
		opts:    opts,
		written: map[string]string{},
		cleared: map[string]bool{},
	}
}

func (s *GinSession) Cookie(name string) (string, bool) {
	if s.cleared[name] {
		return "", false
	}
	if v, ok := s.written[name]; ok {
		return v, true
	}
	v, err := s.c.Cookie(name)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *GinSession) SetCookie(name, value string, ttl time.Duration) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(name, value, int(ttl.Seconds()), "/", s.opts.Domain, s.opts.Secure, true)
	s.written[name] = value
	delete(s.cleared, name)
}

func (s *GinSession) ClearCookie(name string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(name, "", -1, "/", s.opts.Domain, s.opts.Secure, true)
	delete(s.written, name)
	s.cleared[name] = true
}

func (s *GinSession) BearerToken() string {
	h := strings.TrimSpace(s.c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// MemorySession keeps cookies in a map; used by non-HTTP callers and tests.
type MemorySession struct {
	mu      sync.Mutex
	cookies map[string]string
	Bearer  string
}

func NewMemorySession(cookies map[string]string) *MemorySession {
	cp := make(map[string]string, len(cookies))
	for k, v := range cookies {
		cp[k] = v
	}
	return &MemorySession{cookies: cp}
}

func (s *MemorySession) Cookie(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cookies[name]
	return v, ok && v != ""
}

func (s *MemorySession) SetCookie(name, value string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[name] = value
}

func (s *MemorySession) ClearCookie(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cookies, name)
}

func (s *MemorySession) BearerToken() string { return s.Bearer }
