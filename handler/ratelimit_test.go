package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	handled := 0
	next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		handled++
		rw.WriteHeader(http.StatusCreated)
	})

	rl := NewRateLimiter(1, 1, zap.NewNop().Sugar())
	h := rl.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "203.0.113.7:51234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected first request to pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if handled != 1 {
		t.Errorf("Expected the throttled request to never reach the handler, got %d calls", handled)
	}
}

func TestRateLimiter_PerClientAddress(t *testing.T) {
	next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusCreated)
	})

	rl := NewRateLimiter(1, 1, zap.NewNop().Sugar())
	h := rl.Middleware(next)

	first := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	first.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected first client to pass, got %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	second.RemoteAddr = "203.0.113.8:51234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected a different client to pass, got %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr", "203.0.113.7:51234", "", "", "203.0.113.7"},
		{"forwarded for", "10.0.0.1:80", "198.51.100.4, 10.0.0.1", "", "198.51.100.4"},
		{"real ip", "10.0.0.1:80", "", "198.51.100.9", "198.51.100.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				req.Header.Set("X-Real-IP", tc.xri)
			}

			if got := clientIP(req); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
