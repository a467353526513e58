package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per client IP. Entries are never
// evicted, so the map grows with the number of distinct IPs seen over the
// process lifetime.
type rateLimiter struct {
	ips   map[string]*rate.Limiter
	mu    sync.Mutex
	rate  rate.Limit
	burst int
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.ips[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.ips[ip] = limiter
	return limiter
}

// RateLimit returns a per-client-IP rate limiting middleware.
func RateLimit() gin.HandlerFunc {
	rl := &rateLimiter{
		ips:   make(map[string]*rate.Limiter),
		rate:  rate.Every(time.Minute / 300),
		burst: 50,
	}

	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
