package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/platform/logger"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of
// the ArticleStore interface. The database handle is initialized and
// managed by the caller. If logger is nil, a default logger is used.
func NewPostgresArticleStore(db store.DBTX, log *slog.Logger) *PostgresArticleStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: log.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// articleOrderClause builds the ORDER BY clause for the list query.
// Column names cannot be bound as parameters, so membership in the
// allow-lists is re-checked here; anything unexpected falls back to
// the default sort policy. The API layer has already rejected invalid
// values with a 400 by the time this runs.
func articleOrderClause(sortBy, order string) string {
	if !store.ArticleSortColumns[sortBy] {
		sortBy = store.ArticleDefaultSortColumn
	}
	if !store.ArticleSortOrders[strings.ToLower(order)] {
		order = store.ArticleDefaultSortOrder
	}
	return fmt.Sprintf("ORDER BY a.%s %s", sortBy, strings.ToUpper(order))
}

// GetAll implements store.ArticleStore.GetAll
// Comment counts are computed live by the query; Body is intentionally
// not selected since list views exclude it.
func (s *PostgresArticleStore) GetAll(ctx context.Context, filter store.ArticleFilter) ([]*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.author, a.title, a.topic, a.article_img_url,
		       a.votes, a.created_at, COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
	`

	var args []any
	if filter.Topic != "" {
		query += ` WHERE a.topic = $1`
		args = append(args, filter.Topic)
	}

	query += `
		GROUP BY a.article_id
	` + articleOrderClause(filter.SortBy, filter.Order)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("topic", filter.Topic))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var articles []*domain.Article
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ID,
			&article.Author,
			&article.Title,
			&article.Topic,
			&article.ArticleImgURL,
			&article.Votes,
			&article.CreatedAt,
			&article.CommentCount,
		)
		if err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, err
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no articles found
	if articles == nil {
		articles = []*domain.Article{}
	}

	log.Debug("found articles",
		slog.String("topic", filter.Topic),
		slog.Int("count", len(articles)))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleNotFound if the article does not exist. The
// comment count is recomputed on every call, never cached.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.author, a.title, a.body, a.topic, a.article_img_url,
		       a.votes, a.created_at,
		       (SELECT COUNT(*) FROM comments c WHERE c.article_id = a.article_id)::int
		FROM articles a
		WHERE a.article_id = $1
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Author,
		&article.Title,
		&article.Body,
		&article.Topic,
		&article.ArticleImgURL,
		&article.Votes,
		&article.CreatedAt,
		&article.CommentCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		if isInvalidTextRepresentation(err) {
			return nil, store.ErrInvalidID
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, err
	}

	return &article, nil
}

// CheckExists implements store.ArticleStore.CheckExists
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) CheckExists(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		if isInvalidTextRepresentation(err) {
			return store.ErrInvalidID
		}
		log.Error("failed to check article existence",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return err
	}

	if !exists {
		log.Debug("article not found", slog.Int64("article_id", id))
		return store.ErrArticleNotFound
	}

	return nil
}

// Create implements store.ArticleStore.Create
// Returns the generated article ID; votes, created_at, and the image
// default are assigned by the schema. Returns store.ErrInvalidEntity
// if the author or topic foreign key is violated.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		article.Author,
		article.Title,
		article.Body,
		article.Topic,
		article.ArticleImgURL,
	).Scan(&id)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during article creation",
				slog.String("error", err.Error()),
				slog.String("author", article.Author),
				slog.String("topic", article.Topic))
			return 0, fmt.Errorf("%w: author or topic does not exist", store.ErrInvalidEntity)
		}

		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("author", article.Author),
			slog.String("topic", article.Topic))
		return 0, err
	}

	log.Info("article created successfully",
		slog.Int64("article_id", id),
		slog.String("author", article.Author),
		slog.String("topic", article.Topic))
	return id, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The delta is applied as a single atomic update so concurrent patches
// against the same article cannot lose increments.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int64, delta int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return store.ErrInvalidID
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id),
			slog.Int64("delta", delta))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("article not found for vote update", slog.Int64("article_id", id))
		return store.ErrArticleNotFound
	}

	log.Info("article votes updated",
		slog.Int64("article_id", id),
		slog.Int64("delta", delta))
	return nil
}

// Delete implements store.ArticleStore.Delete
// Comments on the article are removed by ON DELETE CASCADE; the schema
// owns that behavior, not this method.
func (s *PostgresArticleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM articles WHERE article_id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return store.ErrInvalidID
		}
		log.Error("failed to delete article",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("article not found for delete", slog.Int64("article_id", id))
		return store.ErrArticleNotFound
	}

	log.Info("article deleted", slog.Int64("article_id", id))
	return nil
}
