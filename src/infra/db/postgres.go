// Package db provides database connection management for PostgreSQL.
// It uses pgx as the database driver for better performance and features.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"

	"clans/src/infra/config"
	"clans/src/infra/logger"
)

// Postgres wraps a pgx connection pool with helper methods.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// PoolConfig translates DatabaseConfig into a pgxpool configuration.
func PoolConfig(cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	if log.Enabled(context.Background(), slog.LevelDebug) {
		poolCfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   &slogTraceLogger{log: logger.WithComponent(log, "pgx")},
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	return poolCfg, nil
}

// New creates the PostgreSQL connection pool and pings it once.
//
// pgx dials lazily, so an unreachable database does not prevent the pool from
// being built. When cfg.FailFast is set the failed ping is returned as an
// error; otherwise it is logged and the pool is handed back so the process can
// keep serving health checks.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := PoolConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		if cfg.FailFast {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Warn("database unreachable at startup (continuing)",
			"host", cfg.Host,
			"database", cfg.Name,
			"error", err,
		)
	} else {
		log.Info("database connection established",
			"host", cfg.Host,
			"port", cfg.Port,
			"database", cfg.Name,
			"min_conns", cfg.MinConns,
			"max_conns", cfg.MaxConns,
		)
	}

	return &Postgres{
		Pool: pool,
		log:  log,
	}, nil
}

// Close closes every pooled connection.
// Call this during graceful shutdown.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
		p.log.Info("database connection closed")
	}
}

// Health checks if the database is reachable.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// WithConn acquires a connection, blocking while the pool is exhausted, and
// hands it to fn. The connection is released exactly once when fn returns or
// panics.
func (p *Postgres) WithConn(ctx context.Context, fn func(*pgxpool.Conn) error) error {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(conn)
}

// WithTx runs fn inside a transaction on a pooled connection. The transaction
// is committed when fn returns nil and rolled back otherwise. Commit or
// rollback returns the connection to the pool.
func (p *Postgres) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	// No-op after a successful commit.
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
