package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"eventcms_backend/internal/response"
)

// RateLimit applies a per-client-IP token bucket. Limiters for idle
// clients are held until process restart, which is acceptable for an
// admin-facing API.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			response.AbortWithError(c, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
