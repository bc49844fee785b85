package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/cache"
)

const APIWindow = time.Minute

// APIRateLimit caps requests per client IP within a fixed window.
// If the counter is unreachable the request goes through.
func APIRateLimit(counter cache.Counter, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		n, err := counter.Incr(c.Request.Context(), ip, window)
		if err != nil {
			log.Warn("rate limit counter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(limit) {
			retry := int(window.Seconds())
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many requests. Try again in %d seconds", retry),
				"retry_after": retry,
			})
			return
		}

		c.Next()
	}
}
