package pg

import (
	"context"
	"log/slog"

	"newsroom/pkg/server"
)

// HealthChecker reports liveness based on a pool ping.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if err := hc.pool.Ping(ctx); err != nil {
		slog.Error("DB health check failed", "error", err)
		return false
	}
	return true
}

var _ server.HealthChecker = (*HealthChecker)(nil)
