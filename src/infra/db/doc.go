// Package db provides database connection and transaction management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Scoped connection and transaction helpers that always release
//   - Create-if-missing schema setup at startup
//   - Query tracing to slog at debug level
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	db.EnsureSchemaOrLog(ctx, pg, cfg.Database)
package db
