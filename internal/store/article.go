package store

import (
	"context"

	"github.com/quillfeed/quillfeed-api/internal/domain"
)

// Article list sorting. The allow-list is enforced by the input
// validators in the API layer; store implementations re-check
// membership before interpolating ORDER BY clauses, since column names
// cannot be bound as query parameters.
const (
	ArticleDefaultSortColumn = "created_at"
	ArticleDefaultSortOrder  = "desc"
)

// ArticleSortColumns enumerates the columns the list endpoint may sort
// by. Votes is deliberately absent; it has never been part of the
// public sort surface.
var ArticleSortColumns = map[string]bool{
	"title":           true,
	"topic":           true,
	"author":          true,
	"body":            true,
	"created_at":      true,
	"article_img_url": true,
}

// ArticleSortOrders enumerates the accepted sort directions.
var ArticleSortOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// ArticleFilter carries the validated list-query parameters. Zero
// values mean "no topic filter" and the default sort policy.
type ArticleFilter struct {
	Topic  string
	SortBy string
	Order  string
}

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// GetAll retrieves articles matching the filter, each with its live
	// comment count attached and ordered per the filter's sort policy.
	// The Body field is not populated; list views exclude it. Returns
	// an empty slice when nothing matches, never nil.
	GetAll(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)

	// GetByID retrieves a single article with its body and live comment
	// count. Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// CheckExists confirms that an article with the given ID exists.
	// Returns ErrArticleNotFound otherwise. Used as a precondition gate
	// by the comment endpoints.
	CheckExists(ctx context.Context, id int64) error

	// Create inserts a new article and returns its generated ID. The
	// caller re-reads through GetByID for the canonical response row.
	// Returns ErrInvalidEntity if a foreign key is violated.
	Create(ctx context.Context, article *domain.Article) (int64, error)

	// IncrementVotes applies a signed delta to the article's vote
	// counter as a single atomic update. Returns ErrArticleNotFound if
	// the article does not exist. Vote totals may go negative.
	IncrementVotes(ctx context.Context, id int64, delta int64) error

	// Delete removes an article by ID. Comments on the article are
	// removed by the schema's ON DELETE CASCADE constraint. Returns
	// ErrArticleNotFound if the article does not exist.
	Delete(ctx context.Context, id int64) error
}
