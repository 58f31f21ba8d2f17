package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemzen/booking-service/pkg/logger"
)

type observed struct {
	route  string
	method string
	status int
}

type fakeRecorder struct {
	calls []observed
}

func (f *fakeRecorder) ObserveHTTPRequest(route, method string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{route: route, method: method, status: status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.HandleFunc("/api/v1/booked-timeslots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/booked-timeslots?date=2025-11-01", nil))

	require.Len(t, rec.calls, 1)
	assert.Equal(t, observed{route: "/api/v1/booked-timeslots", method: http.MethodGet, status: http.StatusTeapot}, rec.calls[0])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(logger.NewNop())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(6, 2, time.Minute, 0, logger.NewNop())
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = ip + ":51234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, post("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))

	// другой клиент не затронут
	assert.Equal(t, http.StatusCreated, post("10.0.0.2"))

	// 6 в минуту: через 10 секунд появляется один токен
	now = now.Add(10 * time.Second)
	assert.Equal(t, http.StatusCreated, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(60, 1, time.Minute, 0, logger.NewNop())
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	now = now.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.0.0.2"))

	assert.Len(t, rl.visitors, 1)
}

func TestClientIP(t *testing.T) {
	newReq := func(fwd ...string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.168.1.10:40000"
		for _, v := range fwd {
			req.Header.Add("X-Forwarded-For", v)
		}
		return req
	}

	tests := []struct {
		name    string
		fwd     []string
		proxies int
		want    string
	}{
		{name: "no header", proxies: 1, want: "192.168.1.10"},
		{name: "header ignored without trusted proxy", fwd: []string{"203.0.113.7"}, want: "192.168.1.10"},
		{name: "single proxy", fwd: []string{"203.0.113.7"}, proxies: 1, want: "203.0.113.7"},
		{name: "spoofed entries on the left", fwd: []string{"1.2.3.4, 5.6.7.8, 203.0.113.7"}, proxies: 1, want: "203.0.113.7"},
		{name: "two proxies", fwd: []string{"1.2.3.4, 203.0.113.7, 10.0.0.1"}, proxies: 2, want: "203.0.113.7"},
		{name: "repeated headers", fwd: []string{"1.2.3.4", "203.0.113.7"}, proxies: 1, want: "203.0.113.7"},
		{name: "fewer hops than proxies", fwd: []string{"203.0.113.7"}, proxies: 3, want: "203.0.113.7"},
		{name: "blank header", fwd: []string{" , "}, proxies: 1, want: "192.168.1.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clientIP(newReq(tt.fwd...), tt.proxies))
		})
	}
}

func TestRateLimiterIgnoresSpoofedForwardedFor(t *testing.T) {
	rl := NewRateLimiter(6, 1, time.Minute, 1, logger.NewNop())
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	// клиент каждый раз подставляет новый адрес слева, прокси дописывает настоящий
	post := func(spoofed string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stays", nil)
		req.RemoteAddr = "10.0.0.254:443"
		req.Header.Set("X-Forwarded-For", spoofed+", 203.0.113.7")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, post("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, post("3.3.3.3"))
	assert.Len(t, rl.visitors, 1)
}

func TestCORSPreflight(t *testing.T) {
	h := CORS([]string{"https://zem-zen.sk"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", "https://zem-zen.sk")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "https://zem-zen.sk", w.Header().Get("Access-Control-Allow-Origin"))
}
