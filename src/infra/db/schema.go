package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clans/src/infra/config"
)

// SchemaStatements returns the create-if-missing DDL for the clans table, in
// execution order. Schema and table names are quoted identifiers.
func SchemaStatements(cfg config.DatabaseConfig) []string {
	schema := pgx.Identifier{cfg.Schema}.Sanitize()
	table := pgx.Identifier{cfg.Schema, cfg.Table}.Sanitize()

	return []string{
		"CREATE SCHEMA IF NOT EXISTS " + schema,
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			region VARCHAR(16) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`, table),
	}
}

// EnsureSchema creates the schema, the pgcrypto extension and the clans table
// when absent. It is safe to run on every startup.
func EnsureSchema(ctx context.Context, p *Postgres, cfg config.DatabaseConfig) error {
	return p.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin schema setup: %w", err)
		}
		defer tx.Rollback(ctx)

		for _, stmt := range SchemaStatements(cfg) {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema setup: %w", err)
			}
		}
		return tx.Commit(ctx)
	})
}

// EnsureSchemaOrLog runs EnsureSchema and swallows any failure after logging
// it, so the process still starts when the database is down.
func EnsureSchemaOrLog(ctx context.Context, p *Postgres, cfg config.DatabaseConfig) {
	if err := EnsureSchema(ctx, p, cfg); err != nil {
		p.log.Error("startup schema setup failed (continuing)", "error", err)
		return
	}
	p.log.Info("schema ready", "schema", cfg.Schema, "table", cfg.Table)
}
