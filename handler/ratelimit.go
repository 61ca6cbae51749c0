package handler

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP. Each instance carries its
// own thresholds, so a stricter limiter can be mounted on a single route
// on top of a looser global one.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	log      *zap.SugaredLogger
}

// NewRateLimiter allows perHour requests per client IP, with short spikes
// up to burst.
func NewRateLimiter(perHour, burst int, log *zap.SugaredLogger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Hour / time.Duration(perHour)),
		burst:    burst,
		log:      log,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it
// doesn't exist.
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Middleware rejects over-limit requests with 429 before the handler runs,
// so a throttled submission creates no record and sends no email.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.getLimiter(ip).Allow() {
			rl.log.Warnw("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			respondErr(r.Context(), rw, http.StatusTooManyRequests, errTooManyRequests)
			return
		}
		next.ServeHTTP(rw, r)
	})
}

var errTooManyRequests = errors.New("rate limit exceeded, try again later")

func clientIP(r *http.Request) string {
	// X-Forwarded-For may contain a comma-separated list of IPs. Use the
	// first one.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && ips[0] != "" {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is usually "ip:port". Strip the port if present.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
