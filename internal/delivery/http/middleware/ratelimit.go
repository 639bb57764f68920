package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	h "explorewithme/internal/delivery/http/helpers"
)

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10000

// limiterCache is a per-key rate limiter cache with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()
	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}
	if len(lc.limiters) >= maxTrackedClients {
		lc.limiters = make(map[K]*rate.Limiter)
	}
	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// RateLimit returns a wrapper that allows rps requests per second per client IP
// with the given burst and answers 429 beyond that. Handlers wrapped by the same
// returned wrapper share one budget per IP. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	cache := newLimiterCache[string](rps, max(burst, 1))
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cache.get(h.ClientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
