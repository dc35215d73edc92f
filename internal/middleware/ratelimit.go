package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// GenerationRateLimiter throttles plan generation per client IP. Each
// generation is one expensive external model call, and the pipeline allows at
// most one in flight anyway, so a tight limit is fine.
func GenerationRateLimiter() gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		// one request per 10s, burst 1; idle entries expire after an hour
		return rate.NewLimiter(rate.Every(10*time.Second), 1), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many plan requests, slow down"})
	})
}
