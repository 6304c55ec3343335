package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusOK, map[string]any{"topics": []string{"coding"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"topics": ["coding"]}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/articles/banana", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusBadRequest, "invalid id")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"msg": "invalid id"}`, rr.Body.String())
}

func TestRespondWithErrorAndLogBodyCarriesOnlySafeMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	rr := httptest.NewRecorder()

	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Internal Server Error",
		errors.New("pq: connection refused at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Msg)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}
