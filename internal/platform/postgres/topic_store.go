package postgres

import (
	"context"
	"log/slog"

	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/platform/logger"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface. The database handle is initialized and managed
// by the caller. If logger is nil, a default logger is used.
func NewPostgresTopicStore(db store.DBTX, log *slog.Logger) *PostgresTopicStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: log.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// GetAll implements store.TopicStore.GetAll
func (s *PostgresTopicStore) GetAll(ctx context.Context) ([]*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var topics []*domain.Topic
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, err
		}
		topics = append(topics, &topic)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no topics found
	if topics == nil {
		topics = []*domain.Topic{}
	}

	return topics, nil
}

// CheckExists implements store.TopicStore.CheckExists
// Returns store.ErrTopicNotFound if no topic has the given slug.
func (s *PostgresTopicStore) CheckExists(ctx context.Context, slug string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		log.Error("failed to check topic existence",
			slog.String("error", err.Error()),
			slog.String("slug", slug))
		return err
	}

	if !exists {
		log.Debug("topic not found", slog.String("slug", slug))
		return store.ErrTopicNotFound
	}

	return nil
}
