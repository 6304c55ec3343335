package store

import (
	"context"

	"github.com/quillfeed/quillfeed-api/internal/domain"
)

// TopicStore defines the interface for topic data access. Topics are
// reference data; the API surface never writes them.
type TopicStore interface {
	// GetAll retrieves every topic. Returns an empty slice when the
	// table is empty, never nil.
	GetAll(ctx context.Context) ([]*domain.Topic, error)

	// CheckExists confirms that a topic with the given slug exists.
	// Returns ErrTopicNotFound otherwise. Used as a precondition gate
	// before filtering articles by topic or inserting an article.
	CheckExists(ctx context.Context, slug string) error
}
