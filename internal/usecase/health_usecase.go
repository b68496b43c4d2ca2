package usecase

import (
	"context"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/logger"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

const healthCheckTimeout = 2 * time.Second

type healthUsecase struct {
	db    Pinger
	redis Pinger
}

// NewHealthUsecase checks the database and, when redis is non-nil, the cache.
func NewHealthUsecase(db Pinger, redis Pinger) domain.HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

// Check reports ok=false only when the database is down; redis is optional.
func (u *healthUsecase) Check(ctx context.Context) (*domain.HealthStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := &domain.HealthStatus{Database: "ok"}
	healthy := true
	if err := u.db.Ping(ctx); err != nil {
		logger.Log.Error("database health check failed", "error", err)
		status.Database = "unavailable"
		healthy = false
	}
	if u.redis != nil {
		status.Redis = "ok"
		if err := u.redis.Ping(ctx); err != nil {
			logger.Log.Warn("redis health check failed", "error", err)
			status.Redis = "unavailable"
		}
	}
	return status, healthy
}
