package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quillfeed/quillfeed-api/internal/api/shared"
)

// getPathID extracts an integer identifier from the URL path.
// A token that does not parse as an integer fails with ErrInvalidID;
// whether the id matches a row is a separate, later question.
func getPathID(r *http.Request, paramName string) (int64, error) {
	param := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}

// voteRequest holds the raw inc_votes field. Raw messages let presence
// be checked before type, so a missing field and a mistyped field
// report differently.
type voteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// decodeVoteDelta parses a vote-patch body. An absent field (or empty
// body) fails with ErrMissingVotesValue; a field that is not an
// integer-compatible JSON number fails with ErrInvalidVotesValue.
func decodeVoteDelta(r *http.Request) (int64, error) {
	var req voteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrMissingVotesValue
		}
		return 0, ErrInvalidVotesValue
	}

	if len(req.IncVotes) == 0 {
		return 0, ErrMissingVotesValue
	}

	// A quoted "3" is a string, not a number; unmarshalling into
	// float64 rejects it along with every other non-number.
	var value float64
	if err := json.Unmarshal(req.IncVotes, &value); err != nil {
		return 0, ErrInvalidVotesValue
	}

	delta := int64(value)
	if float64(delta) != value {
		return 0, ErrInvalidVotesValue
	}

	return delta, nil
}

// requireString unmarshals a raw field that must be a JSON string,
// failing with ErrInvalidInput for any other type.
func requireString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrInvalidInput
	}
	return s, nil
}
