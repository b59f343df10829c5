// Package main is the entry point for the Clans API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"clans/src/app/server"
	"clans/src/infra/config"
	"clans/src/infra/db"
	"clans/src/infra/logger"
	"clans/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"schema", cfg.Database.Schema,
		"table", cfg.Database.Table,
	)

	ctx := context.Background()

	// Only fails when DB_FAIL_FAST is set; otherwise an unreachable database
	// is logged and requests fail individually until it comes back.
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.AutoMigrate {
		db.EnsureSchemaOrLog(ctx, pg, cfg.Database)
	}

	clanRepo := repo.NewClanRepository(pg, cfg.Database.Schema, cfg.Database.Table, log)

	srv := server.New(cfg, log, clanRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
