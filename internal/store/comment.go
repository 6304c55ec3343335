package store

import (
	"context"

	"github.com/quillfeed/quillfeed-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// GetByArticleID retrieves all comments on an article, newest
	// first. Returns an empty slice when the article has no comments,
	// never nil. Article existence is the caller's precondition.
	GetByArticleID(ctx context.Context, articleID int64) ([]*domain.Comment, error)

	// GetByID retrieves a single comment. Returns ErrCommentNotFound if
	// the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// Create inserts a new comment and returns the stored row with its
	// generated ID, timestamp, and zero vote count. Returns
	// ErrInvalidEntity if a foreign key is violated.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// IncrementVotes applies a signed delta to the comment's vote
	// counter as a single atomic update. Returns ErrCommentNotFound if
	// the comment does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int64) error

	// Delete removes a comment by ID. Returns ErrCommentNotFound if the
	// comment does not exist.
	Delete(ctx context.Context, id int64) error
}
