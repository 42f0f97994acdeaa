package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Too many requests from this IP, please try again in an hour!"

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func (c *client) touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

func (c *client) idleFor() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.lastSeen)
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{r: r, b: b}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})
	return limiter
}

// Cleanup drops limiters idle for longer than idle.
func (i *IPRateLimiter) Cleanup(idle time.Duration) {
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).idleFor() > idle {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware allows requestsPerHour requests per client IP, refilled
// continuously over the hour. A non-positive value disables limiting.
func RateLimitMiddleware(requestsPerHour int) gin.HandlerFunc {
	if requestsPerHour <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewIPRateLimiter(rate.Limit(float64(requestsPerHour)/time.Hour.Seconds()), requestsPerHour)
	var lastCleanup time.Time
	var cleanupMu sync.Mutex

	return func(c *gin.Context) {
		cleanupMu.Lock()
		if time.Since(lastCleanup) > time.Minute {
			lastCleanup = time.Now()
			// a drained bucket refills completely within an hour
			go limiter.Cleanup(time.Hour)
		}
		cleanupMu.Unlock()

		if !limiter.getLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "3600")
			c.String(http.StatusTooManyRequests, rateLimitMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
