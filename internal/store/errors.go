package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below; handlers normally match on those.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when the storage engine rejects a key
	// because its textual representation cannot be converted to the
	// column type (Postgres error 22P02). Path parameters are parsed
	// before any query runs, so this is a safety net rather than the
	// primary guard.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidEntity is returned when an entity fails validation or a
	// referential-integrity constraint before or during a write. Check
	// the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrTopicNotFound indicates that the requested topic does not exist in the store.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist in the store.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist in the store.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific not found errors wrap ErrNotFound, so a single
// errors.Is covers them all.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
