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

// ArticleResponse is the single-article payload. Unlike list items it
// carries the body.
type ArticleResponse struct {
	ArticleID     int64     `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
	CreatedAt     time.Time `json:"created_at"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleListItem is the list-view payload; list views never include
// the body.
type ArticleListItem struct {
	ArticleID     int64     `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
	CreatedAt     time.Time `json:"created_at"`
	CommentCount  int       `json:"comment_count"`
}

// createArticleRequest holds the raw fields of a POST /api/articles
// body. Raw messages let each field's presence be checked before its
// type, preserving the incomplete-before-invalid error precedence.
type createArticleRequest struct {
	Author        json.RawMessage `json:"author"`
	Title         json.RawMessage `json:"title"`
	Body          json.RawMessage `json:"body"`
	Topic         json.RawMessage `json:"topic"`
	ArticleImgURL json.RawMessage `json:"article_img_url"`
}

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleStore store.ArticleStore
	topicStore   store.TopicStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articleStore store.ArticleStore,
	topicStore store.TopicStore,
	userStore store.UserStore,
	log *slog.Logger,
) *ArticleHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ArticleHandler")
	}

	return &ArticleHandler{
		articleStore: articleStore,
		topicStore:   topicStore,
		userStore:    userStore,
		logger:       log.With(slog.String("component", "article_handler")),
	}
}

// ListArticles handles GET /api/articles requests, optionally filtered
// by topic and sorted per the sort_by/order_by queries. When a topic
// is supplied its existence is checked before the sort and order
// values are validated; an invalid sort or order never reaches the
// store.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()

	topic := query.Get("topic")
	if topic != "" {
		if err := h.topicStore.CheckExists(r.Context(), topic); err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	sortBy := query.Get("sort_by")
	if sortBy == "" {
		sortBy = store.ArticleDefaultSortColumn
	}
	if !store.ArticleSortColumns[sortBy] {
		log.Debug("rejected sort query", slog.String("sort_by", sortBy))
		HandleAPIError(w, r, ErrInvalidSortQuery)
		return
	}

	order := query.Get("order_by")
	if order == "" {
		order = store.ArticleDefaultSortOrder
	}
	if !store.ArticleSortOrders[order] {
		log.Debug("rejected order query", slog.String("order_by", order))
		HandleAPIError(w, r, ErrInvalidOrderQuery)
		return
	}

	articles, err := h.articleStore.GetAll(r.Context(), store.ArticleFilter{
		Topic:  topic,
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items := make([]ArticleListItem, 0, len(articles))
	for _, article := range articles {
		items = append(items, articleToListItem(article))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"articles": items})
}

// GetArticleByID handles GET /api/articles/{article_id} requests. The
// response includes the body and a freshly computed comment count.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": articleToResponse(article)})
}

// CreateArticle handles POST /api/articles requests. Pipeline: shape
// validation, author existence (400 invalid username), topic existence
// (404), insert, then a re-read for the canonical row with its zero
// comment count.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req createArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			HandleAPIError(w, r, ErrIncompleteInput)
			return
		}
		HandleAPIError(w, r, ErrInvalidInput)
		return
	}

	// Presence of every required field is checked before any type, so
	// a request that is both incomplete and mistyped reports incomplete.
	required := []json.RawMessage{req.Author, req.Title, req.Body, req.Topic}
	for _, raw := range required {
		if len(raw) == 0 {
			HandleAPIError(w, r, ErrIncompleteInput)
			return
		}
	}

	author, err := requireString(req.Author)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	title, err := requireString(req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	body, err := requireString(req.Body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	topic, err := requireString(req.Topic)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var imgURL string
	if len(req.ArticleImgURL) != 0 {
		imgURL, err = requireString(req.ArticleImgURL)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	if err := h.userStore.CheckExists(r.Context(), author); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = ErrInvalidUsername
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := h.topicStore.CheckExists(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article := domain.NewArticle(author, title, body, topic, imgURL)

	id, err := h.articleStore.Create(r.Context(), article)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.articleStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("article created",
		slog.Int64("article_id", id),
		slog.String("author", author),
		slog.String("topic", topic))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]any{"article": articleToResponse(created)})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests.
// The delta is applied as one atomic increment and the updated row is
// re-read for the response.
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleStore.IncrementVotes(r.Context(), id, delta); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"article": articleToResponse(article)})
}

// DeleteArticle handles DELETE /api/articles/{article_id} requests.
// Deletion cascades to the article's comments.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// articleToResponse converts a domain.Article to an ArticleResponse.
func articleToResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:     article.ID,
		Author:        article.Author,
		Title:         article.Title,
		Body:          article.Body,
		Topic:         article.Topic,
		ArticleImgURL: article.ArticleImgURL,
		Votes:         article.Votes,
		CreatedAt:     article.CreatedAt,
		CommentCount:  article.CommentCount,
	}
}

// articleToListItem converts a domain.Article to an ArticleListItem.
func articleToListItem(article *domain.Article) ArticleListItem {
	return ArticleListItem{
		ArticleID:     article.ID,
		Author:        article.Author,
		Title:         article.Title,
		Topic:         article.Topic,
		ArticleImgURL: article.ArticleImgURL,
		Votes:         article.Votes,
		CreatedAt:     article.CreatedAt,
		CommentCount:  article.CommentCount,
	}
}
