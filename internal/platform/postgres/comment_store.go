package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/platform/logger"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of
// the CommentStore interface. The database handle is initialized and
// managed by the caller. If logger is nil, a default logger is used.
func NewPostgresCommentStore(db store.DBTX, log *slog.Logger) *PostgresCommentStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: log.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// GetByArticleID implements store.CommentStore.GetByArticleID
// Comments come back newest first. Article existence is the caller's
// precondition; an existing article with no comments yields an empty
// slice.
func (s *PostgresCommentStore) GetByArticleID(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return nil, store.ErrInvalidID
		}
		log.Error("failed to query comments by article",
			slog.String("error", err.Error()),
			slog.Int64("article_id", articleID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ArticleID,
			&comment.Author,
			&comment.Body,
			&comment.Votes,
			&comment.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no comments found
	if comments == nil {
		comments = []*domain.Comment{}
	}

	log.Debug("found comments for article",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(comments)))
	return comments, nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE comment_id = $1
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		if isInvalidTextRepresentation(err) {
			return nil, store.ErrInvalidID
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, err
	}

	return &comment, nil
}

// Create implements store.CommentStore.Create
// Returns the stored row with its generated ID, timestamp, and zero
// vote count. Returns store.ErrInvalidEntity if the article or author
// foreign key is violated.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var created domain.Comment
	err := s.db.QueryRowContext(
		ctx,
		query,
		comment.ArticleID,
		comment.Author,
		comment.Body,
	).Scan(
		&created.ID,
		&created.ArticleID,
		&created.Author,
		&created.Body,
		&created.Votes,
		&created.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int64("article_id", comment.ArticleID),
				slog.String("author", comment.Author))
			return nil, fmt.Errorf("%w: article or author does not exist", store.ErrInvalidEntity)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("article_id", comment.ArticleID),
			slog.String("author", comment.Author))
		return nil, err
	}

	log.Info("comment created successfully",
		slog.Int64("comment_id", created.ID),
		slog.Int64("article_id", created.ArticleID),
		slog.String("author", created.Author))
	return &created, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
// The delta is applied as a single atomic update so concurrent patches
// against the same comment cannot lose increments.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int64, delta int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return store.ErrInvalidID
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id),
			slog.Int64("delta", delta))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("comment not found for vote update", slog.Int64("comment_id", id))
		return store.ErrCommentNotFound
	}

	log.Info("comment votes updated",
		slog.Int64("comment_id", id),
		slog.Int64("delta", delta))
	return nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return store.ErrInvalidID
		}
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("comment not found for delete", slog.Int64("comment_id", id))
		return store.ErrCommentNotFound
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
