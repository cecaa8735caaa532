package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestBearerToken(t *testing.T) {
	h := BearerToken("secret")(okHandler)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic secret", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer secret", http.StatusOK},
		{"scheme is case-insensitive", "bearer secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestBearerToken_EmptyDisablesAuth(t *testing.T) {
	w := httptest.NewRecorder()
	BearerToken("")(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
}

func TestRateLimiter_CleanupDropsIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(time.Hour)
	rl.Allow("fresh")

	rl.Cleanup(10 * time.Minute)
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimit_Rejects(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	h := RateLimit(rl)(okHandler)

	send := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}
	require.Equal(t, http.StatusOK, send().Code)
	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestMetricsCollector(t *testing.T) {
	mc := NewMetricsCollector()
	for _, code := range []int{200, 404, 502, 500} {
		code := code
		h := mc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, MetricsSnapshot{Requests: 4, ClientErrors: 1, UpstreamErrors: 1, ServerErrors: 1}, mc.Snapshot())
}
