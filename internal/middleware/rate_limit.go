package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/util"
)

// RateLimiter applies a per-IP token bucket.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*ipLimiter
}

type ipLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps < 1 {
		rps = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: map[string]*ipLimiter{},
	}
}

// Middleware rejects requests over the per-IP limit with 429.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.get(c.ClientIP()).Allow() {
			util.Error(c, 429, apperr.Code("rate_limited"), "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cleanupLocked()

	if l, ok := r.limiters[ip]; ok {
		l.expires = time.Now().Add(5 * time.Minute)
		return l.limiter
	}

	l := &ipLimiter{
		limiter: rate.NewLimiter(r.rps, r.burst),
		expires: time.Now().Add(5 * time.Minute),
	}
	r.limiters[ip] = l
	return l.limiter
}

func (r *RateLimiter) cleanupLocked() {
	now := time.Now()
	for ip, l := range r.limiters {
		if now.After(l.expires) {
			delete(r.limiters, ip)
		}
	}
}
