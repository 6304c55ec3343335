package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/quillfeed/quillfeed-api/internal/config"
	"github.com/quillfeed/quillfeed-api/internal/platform/postgres"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place. Handlers receive the stores they need
// explicitly; nothing reaches for process-wide state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute mocks)
	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore
}

// newApplication creates an application with all dependencies
// initialized. The config, logger, and database connection must be
// established by the caller.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.topicStore = postgres.NewPostgresTopicStore(db, logger)
	app.articleStore = postgres.NewPostgresArticleStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
