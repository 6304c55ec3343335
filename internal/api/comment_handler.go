package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/quillfeed/quillfeed-api/internal/api/shared"
	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/platform/logger"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// CommentResponse is the comment payload shared by the list, create,
// and vote-patch endpoints.
type CommentResponse struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// createCommentRequest holds the raw fields of a comment-creation
// body; presence is checked before type.
type createCommentRequest struct {
	Username json.RawMessage `json:"username"`
	Body     json.RawMessage `json:"body"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentStore store.CommentStore
	articleStore store.ArticleStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(
	commentStore store.CommentStore,
	articleStore store.ArticleStore,
	userStore store.UserStore,
	log *slog.Logger,
) *CommentHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		commentStore: commentStore,
		articleStore: articleStore,
		userStore:    userStore,
		logger:       log.With(slog.String("component", "comment_handler")),
	}
}

// ListArticleComments handles GET /api/articles/{article_id}/comments
// requests. The article must exist; an existing article with no
// comments yields an empty array, not an error.
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleStore.CheckExists(r.Context(), articleID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.commentStore.GetByArticleID(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, commentToResponse(comment))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comments": items})
}

// CreateComment handles POST /api/articles/{article_id}/comments
// requests. Pipeline: shape validation, article existence (404),
// author existence (400 invalid username), then the insert.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req createCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			HandleAPIError(w, r, ErrIncompleteInput)
			return
		}
		HandleAPIError(w, r, ErrInvalidInput)
		return
	}

	if len(req.Username) == 0 || len(req.Body) == 0 {
		HandleAPIError(w, r, ErrIncompleteInput)
		return
	}

	username, err := requireString(req.Username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	body, err := requireString(req.Body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleStore.CheckExists(r.Context(), articleID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.userStore.CheckExists(r.Context(), username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = ErrInvalidUsername
		}
		HandleAPIError(w, r, err)
		return
	}

	comment, err := domain.NewComment(articleID, username, body)
	if err != nil {
		HandleAPIError(w, r, ErrInvalidInput)
		return
	}

	created, err := h.commentStore.Create(r.Context(), comment)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("article_id", articleID),
		slog.String("author", username))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"comment": commentToResponse(created)})
}

// PatchCommentVotes handles PATCH /api/comments/{comment_id} requests.
// The delta is applied as one atomic increment and the updated row is
// re-read for the response.
func (h *CommentHandler) PatchCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.commentStore.IncrementVotes(r.Context(), id, delta); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.commentStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"comment": commentToResponse(comment)})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.commentStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// commentToResponse converts a domain.Comment to a CommentResponse.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.ID,
		ArticleID: comment.ArticleID,
		Author:    comment.Author,
		Body:      comment.Body,
		Votes:     comment.Votes,
		CreatedAt: comment.CreatedAt,
	}
}
