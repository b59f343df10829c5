// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"clans/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// PoolStats is a snapshot of connection pool counters.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}

// PoolReporter is implemented by repositories backed by a connection pool.
type PoolReporter interface {
	PoolStats() PoolStats
}

// ClanRepository persists clans. Callers validate input first; every method
// is one database round trip in its own transaction.
type ClanRepository interface {
	Repository

	// Create inserts a clan with a server-generated id and timestamp.
	Create(ctx context.Context, name, region string) (*domain.Clan, error)

	// List returns clans matching q in database order.
	List(ctx context.Context, q domain.ListQuery) ([]domain.Clan, error)

	// Get returns the clan with id or a not found error.
	Get(ctx context.Context, id uuid.UUID) (*domain.Clan, error)

	// Delete removes the clan with id and returns that id, or a not found error.
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
