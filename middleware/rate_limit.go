package middleware

import (
	"context"
	"strconv"
	"time"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/gin-gonic/gin"
)

// RateLimiter counts hits against a key within a fixed window.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, count int64, retryAfter time.Duration, err error)
}

// SubmissionRateLimiter limits public form posts per client IP. scope keeps
// the contact and newsletter budgets apart. Limiter errors let the request
// through.
func SubmissionRateLimiter(limiter RateLimiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "submit:" + scope + ":" + c.ClientIP()

		allowed, count, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request",
				"scope", scope,
				"error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(retryAfter).Unix(), 10))
			c.Header("Retry-After", strconv.Itoa(seconds))

			_ = c.Error(apperrors.RateLimitExceeded("Too many submissions. Please try again later.", seconds))
			c.Abort()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		c.Next()
	}
}
