package services

import (
	"context"
	"time"

	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dbPingAttempts = 3
	componentCheck = 2 * time.Second
)

// Pinger is the part of the connection pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports the state of the database and the optional Redis
// connection.
type HealthService struct {
	db          Pinger
	redisClient *redis.Client
	version     string
	startTime   time.Time
	retryDelay  time.Duration
	log         *zap.SugaredLogger
}

// NewHealthService creates a HealthService. A nil redisClient means Redis is
// not configured and is left out of the report.
func NewHealthService(db Pinger, redisClient *redis.Client, version string) *HealthService {
	return &HealthService{
		db:          db,
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		retryDelay:  100 * time.Millisecond,
		log:         logger.GetLogger(),
	}
}

// CheckHealth pings every dependency. The database being down makes the
// service DOWN; Redis being down only degrades it since rate limiting fails open.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overall := types.HealthStatusUp

	dbStatus := h.checkDatabase(ctx)
	components["database"] = dbStatus
	if dbStatus.Status == types.HealthStatusDown {
		overall = types.HealthStatusDown
	}

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status != types.HealthStatusUp && overall == types.HealthStatusUp {
			overall = types.HealthStatusDegraded
		}
	}

	return types.HealthCheck{
		Status:     overall,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	var err error
	for attempt := 1; attempt <= dbPingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, componentCheck)
		err = h.db.Ping(pingCtx)
		cancel()
		if err == nil {
			return types.HealthComponent{Status: types.HealthStatusUp}
		}
		if attempt < dbPingAttempts {
			select {
			case <-ctx.Done():
				return h.databaseDown(ctx.Err())
			case <-time.After(h.retryDelay):
			}
		}
	}

	return h.databaseDown(err)
}

func (h *HealthService) databaseDown(err error) types.HealthComponent {
	h.log.Errorw("Database health check failed", "error", err)
	return types.HealthComponent{
		Status:  types.HealthStatusDown,
		Details: "Database connection failed",
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	pingCtx, cancel := context.WithTimeout(ctx, componentCheck)
	defer cancel()

	if err := h.redisClient.Ping(pingCtx).Err(); err != nil {
		h.log.Warnw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
