package api

import (
	"log/slog"
	"net/http"

	"github.com/quillfeed/quillfeed-api/internal/api/shared"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicStore store.TopicStore, log *slog.Logger) *TopicHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TopicHandler")
	}

	return &TopicHandler{
		topicStore: topicStore,
		logger:     log.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /api/topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicStore.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"topics": topics})
}
