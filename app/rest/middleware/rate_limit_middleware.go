package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-IP request limits, stricter on the account
// endpoints than on content reads.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its visitor cleanup
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the echo middleware applying the limits
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Request().URL.Path

			var limit rate.Limit
			var burst int
			switch {
			case strings.Contains(path, "check-login"):
				limit = rate.Every(time.Second)
				burst = 5
			case strings.Contains(path, "sign-up"):
				limit = rate.Every(10 * time.Second)
				burst = 3
			default:
				limit = rate.Every(50 * time.Millisecond)
				burst = 40
			}

			if !rl.allow(ip+":"+bucketFor(path), limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"status":  "Error",
					"message": "Rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}

// bucketFor keeps the strict endpoints in their own counters so a burst of
// feed reads cannot starve a login attempt
func bucketFor(path string) string {
	switch {
	case strings.Contains(path, "check-login"):
		return "login"
	case strings.Contains(path, "sign-up"):
		return "signup"
	default:
		return "api"
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
