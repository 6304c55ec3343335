package store

import (
	"context"

	"github.com/quillfeed/quillfeed-api/internal/domain"
)

// UserStore defines the interface for user data access. Users are
// reference data; the API surface never writes them.
type UserStore interface {
	// GetAll retrieves every user. Returns an empty slice when the
	// table is empty, never nil.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByUsername retrieves a single user. Returns ErrUserNotFound if
	// no user has the given username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// CheckExists confirms that a user with the given username exists.
	// Returns ErrUserNotFound otherwise. Used as the author existence
	// gate on article and comment creation.
	CheckExists(ctx context.Context, username string) error
}
