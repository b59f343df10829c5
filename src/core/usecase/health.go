package usecase

import (
	"context"
	"log/slog"

	"clans/src/core/ports"
)

// HealthService reports the health of the database behind the API.
type HealthService struct {
	db  ports.Repository
	log *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{
		db:  db,
		log: log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string           `json:"status"`
	Message string           `json:"message,omitempty"`
	Pool    *ports.PoolStats `json:"pool,omitempty"`
}

// Check pings the database. An unreachable database degrades the status but
// is never an error: the process stays up.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	component := ComponentHealth{Status: "healthy"}
	if err := s.db.Health(ctx); err != nil {
		s.log.Warn("database health check failed", "error", err)
		status.Status = "degraded"
		component = ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	}
	if reporter, ok := s.db.(ports.PoolReporter); ok {
		stats := reporter.PoolStats()
		component.Pool = &stats
	}
	status.Components["database"] = component

	return status
}
