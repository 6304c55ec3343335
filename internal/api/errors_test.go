package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/quillfeed/quillfeed-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid_id", err: ErrInvalidID, expected: http.StatusBadRequest},
		{name: "missing_votes_value", err: ErrMissingVotesValue, expected: http.StatusBadRequest},
		{name: "invalid_votes_value", err: ErrInvalidVotesValue, expected: http.StatusBadRequest},
		{name: "incomplete_input", err: ErrIncompleteInput, expected: http.StatusBadRequest},
		{name: "invalid_input", err: ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "invalid_sort_query", err: ErrInvalidSortQuery, expected: http.StatusBadRequest},
		{name: "invalid_order_query", err: ErrInvalidOrderQuery, expected: http.StatusBadRequest},
		{name: "invalid_username", err: ErrInvalidUsername, expected: http.StatusBadRequest},
		{name: "store_invalid_id", err: store.ErrInvalidID, expected: http.StatusBadRequest},
		{name: "store_invalid_entity", err: store.ErrInvalidEntity, expected: http.StatusBadRequest},
		{name: "topic_not_found", err: store.ErrTopicNotFound, expected: http.StatusNotFound},
		{name: "article_not_found", err: store.ErrArticleNotFound, expected: http.StatusNotFound},
		{name: "comment_not_found", err: store.ErrCommentNotFound, expected: http.StatusNotFound},
		{name: "user_not_found", err: store.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "wrapped_not_found", err: fmt.Errorf("lookup: %w", store.ErrArticleNotFound), expected: http.StatusNotFound},
		{name: "unknown_error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "invalid_id", err: ErrInvalidID, expected: "invalid id"},
		{name: "store_invalid_id", err: store.ErrInvalidID, expected: "invalid id"},
		{name: "missing_votes_value", err: ErrMissingVotesValue, expected: "missing votes value"},
		{name: "invalid_votes_value", err: ErrInvalidVotesValue, expected: "invalid votes value"},
		{name: "incomplete_input", err: ErrIncompleteInput, expected: "incomplete input"},
		{name: "invalid_input", err: ErrInvalidInput, expected: "invalid input"},
		{name: "invalid_entity_collapses_to_invalid_input", err: store.ErrInvalidEntity, expected: "invalid input"},
		{name: "invalid_sort_query", err: ErrInvalidSortQuery, expected: "invalid sort query"},
		{name: "invalid_order_query", err: ErrInvalidOrderQuery, expected: "invalid order query"},
		{name: "invalid_username", err: ErrInvalidUsername, expected: "invalid username"},
		{name: "topic_not_found", err: store.ErrTopicNotFound, expected: "topic not found"},
		{name: "article_not_found", err: store.ErrArticleNotFound, expected: "article not found"},
		{name: "comment_not_found", err: store.ErrCommentNotFound, expected: "comment not found"},
		{name: "user_not_found", err: store.ErrUserNotFound, expected: "user not found"},
		{name: "generic_not_found", err: store.ErrNotFound, expected: "not found"},
		{name: "unknown_error_never_leaks", err: errors.New("pq: secret detail"), expected: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
