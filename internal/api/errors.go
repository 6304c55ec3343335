package api

import (
	"errors"
	"net/http"

	"github.com/quillfeed/quillfeed-api/internal/api/shared"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// Validation errors raised by the request validators before any
// storage call. Their messages are the exact strings clients see.
var (
	// ErrInvalidID indicates a path parameter that does not parse as an
	// integer. Distinct from a well-formed id that matches no row,
	// which is a not-found condition.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingVotesValue indicates a vote patch without an inc_votes field.
	ErrMissingVotesValue = errors.New("missing votes value")

	// ErrInvalidVotesValue indicates an inc_votes field that is not an
	// integer-compatible number.
	ErrInvalidVotesValue = errors.New("invalid votes value")

	// ErrIncompleteInput indicates a create request missing a required field.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrInvalidInput indicates a create request field of the wrong type.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSortQuery indicates a sort_by value outside the allow-list.
	ErrInvalidSortQuery = errors.New("invalid sort query")

	// ErrInvalidOrderQuery indicates an order_by value other than asc/desc.
	ErrInvalidOrderQuery = errors.New("invalid order query")

	// ErrInvalidUsername indicates that the author named on a create
	// request does not exist. Reported as a 400 on both article and
	// comment creation.
	ErrInvalidUsername = errors.New("invalid username")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation failures and malformed identifiers are client errors,
// missing entities are 404s, and anything unclassified is a 500 so
// internal detail never leaks through a misleading status.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrMissingVotesValue),
		errors.Is(err, ErrInvalidVotesValue),
		errors.Is(err, ErrIncompleteInput),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidSortQuery),
		errors.Is(err, ErrInvalidOrderQuery),
		errors.Is(err, ErrInvalidUsername),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for an error.
// Unknown errors collapse to a generic message; raw error text is
// never sent to clients.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, store.ErrInvalidID):
		return "invalid id"

	case errors.Is(err, ErrMissingVotesValue):
		return "missing votes value"

	case errors.Is(err, ErrInvalidVotesValue):
		return "invalid votes value"

	case errors.Is(err, ErrIncompleteInput):
		return "incomplete input"

	case errors.Is(err, ErrInvalidInput), errors.Is(err, store.ErrInvalidEntity):
		return "invalid input"

	case errors.Is(err, ErrInvalidSortQuery):
		return "invalid sort query"

	case errors.Is(err, ErrInvalidOrderQuery):
		return "invalid order query"

	case errors.Is(err, ErrInvalidUsername):
		return "invalid username"

	case errors.Is(err, store.ErrTopicNotFound):
		return "topic not found"

	case errors.Is(err, store.ErrArticleNotFound):
		return "article not found"

	case errors.Is(err, store.ErrCommentNotFound):
		return "comment not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case store.IsNotFoundError(err):
		return "not found"

	default:
		return "Internal Server Error"
	}
}

// HandleAPIError maps the error to a status and safe message, writes
// the response, and logs the full error detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
