// Package main implements the entry point for the quillfeed API
// server, a RESTful news aggregator over topics, articles, comments,
// and users.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quillfeed/quillfeed-api/internal/config"
	"github.com/quillfeed/quillfeed-api/internal/platform/logger"
)

func main() {
	migrate := flag.String("migrate", "", "run database migrations (up|down|status) and exit")
	routes := flag.Bool("routes", false, "print the route documentation as JSON and exit")
	flag.Parse()

	if *routes {
		printRoutesDoc()
		return
	}

	if err := run(context.Background(), *migrate); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires configuration, logging, and the database together, then
// either executes a migration command or starts the HTTP server.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("error closing database connection", "error", err)
			}
		}()
		return runMigrations(db, migrateCmd, appLogger)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// printRoutesDoc writes the chi route tree as JSON to stdout. Handy
// for keeping endpoints.json honest.
func printRoutesDoc() {
	doc, err := routesDocJSON()
	if err != nil {
		log.Fatalf("failed to generate routes doc: %v", err)
	}
	fmt.Fprintln(os.Stdout, doc)
}
