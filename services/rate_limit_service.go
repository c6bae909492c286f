package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterInterface defines the contract for rate limiting operations.
type RateLimiterInterface interface {
	// CheckLimit counts one hit against key. It reports whether the hit is
	// within limit, the hits counted so far in the window and, when over
	// the limit, how long until the window resets.
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, count int64, retryAfter time.Duration, err error)
}

// RateLimitService provides fixed window rate limiting using Redis.
type RateLimitService struct {
	redis     *redis.Client
	keyPrefix string
}

// NewRateLimitService creates a RateLimitService on top of client.
func NewRateLimitService(client *redis.Client) *RateLimitService {
	return &RateLimitService{
		redis:     client,
		keyPrefix: "ratelimit:",
	}
}

// CheckLimit increments the counter for key and pushes its expiry out by
// window. INCR and EXPIRE run in one MULTI/EXEC transaction, so a client
// that keeps submitting stays blocked until it pauses for a full window.
func (s *RateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, int64, time.Duration, error) {
	rKey := s.keyPrefix + key

	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.Expire(ctx, rKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, err
	}

	count := incr.Val()
	if count <= int64(limit) {
		return true, count, 0, nil
	}

	ttl, err := s.redis.TTL(ctx, rKey).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}
	return false, count, ttl, nil
}
