package api

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quillfeed/quillfeed-api/internal/api/shared"
)

// endpointsJSON is the endpoint-metadata document served by GET /api.
// It is maintained by hand alongside the routes.
//
//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsHandler serves the API's own endpoint documentation.
type EndpointsHandler struct {
	logger *slog.Logger
}

// NewEndpointsHandler creates a new EndpointsHandler.
func NewEndpointsHandler(log *slog.Logger) *EndpointsHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EndpointsHandler")
	}

	return &EndpointsHandler{
		logger: log.With(slog.String("component", "endpoints_handler")),
	}
}

// GetEndpoints handles GET /api requests, returning a description of
// every endpoint, its accepted queries, and an example response.
func (h *EndpointsHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]json.RawMessage{
		"endpoints": endpointsJSON,
	})
}
