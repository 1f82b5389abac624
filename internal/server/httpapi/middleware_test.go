package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/server/limiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	h := newTestHandler(Deps{})

	t.Run("generated", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/health", "", "")
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})
}

func TestRateLimit_Rejects(t *testing.T) {
	lim := &fakeLimiter{res: limiter.Result{Allowed: false, Limit: 5, Remaining: 0, RetryAfter: 1500 * time.Millisecond}}
	h := newTestHandler(Deps{Users: &fakeUsers{}, Limiter: lim})

	rec := do(t, h, http.MethodPost, "/auth/signin", "", `{"email":"kim@gmail.com","password":"123"}`)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", decodeError(t, rec).Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.Len(t, lim.keys, 1)
	assert.Equal(t, "ip:192.0.2.1", lim.keys[0])
}

func TestRateLimit_KeyIgnoresForwardedHeaders(t *testing.T) {
	lim := &fakeLimiter{res: limiter.Result{Allowed: false, Limit: 5}}
	h := newTestHandler(Deps{Users: &fakeUsers{}, Limiter: lim})

	for _, ip := range []string{"203.0.113.7", "203.0.113.8"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
		req.Header.Set("X-Forwarded-For", ip)
		req.Header.Set("X-Real-IP", ip)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, []string{"ip:192.0.2.1", "ip:192.0.2.1"}, lim.keys)
}

func TestRateLimit_TrustedProxy(t *testing.T) {
	lim := &fakeLimiter{res: limiter.Result{Allowed: false, Limit: 5}}
	h := newTestHandler(Deps{Users: &fakeUsers{}, Limiter: lim, TrustProxy: true})

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"ip:203.0.113.7"}, lim.keys)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	lim := &fakeLimiter{err: errBoom}
	users := &fakeUsers{signInFn: func(ctx context.Context, email, password string) (string, error) {
		return "tok", nil
	}}
	h := newTestHandler(Deps{Users: users, Limiter: lim})

	rec := do(t, h, http.MethodPost, "/auth/signin", "", `{"email":"kim@gmail.com","password":"123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, lim.calls)
}

func TestRateLimit_OnlyAuthRoutes(t *testing.T) {
	lim := &fakeLimiter{res: limiter.Result{Allowed: false, Limit: 1}}
	h := newTestHandler(Deps{Users: &fakeUsers{}, Limiter: lim})

	rec := do(t, h, http.MethodGet, "/users/me", "valid-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, lim.calls)
}

func TestRecoverer(t *testing.T) {
	h := newTestHandler(Deps{Users: &fakeUsers{}})

	// editFn is nil, so the handler panics.
	rec := do(t, h, http.MethodPatch, "/users", "valid-1", `{"firstName":"Kim"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(Deps{})

	req := httptest.NewRequest(http.MethodOptions, "/bookmark", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
