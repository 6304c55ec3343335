package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/quillfeed/quillfeed-api/internal/api"
	apiMiddleware "github.com/quillfeed/quillfeed-api/internal/api/middleware"
	"github.com/quillfeed/quillfeed-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() chi.Router {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's stores
	endpointsHandler := api.NewEndpointsHandler(app.logger)
	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.topicStore, app.userStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.articleStore, app.userStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", endpointsHandler.GetEndpoints)

		r.Get("/topics", topicHandler.ListTopics)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.ListArticles)
			r.Post("/", articleHandler.CreateArticle)

			r.Get("/{article_id}", articleHandler.GetArticleByID)
			r.Patch("/{article_id}", articleHandler.PatchArticleVotes)
			r.Delete("/{article_id}", articleHandler.DeleteArticle)

			r.Get("/{article_id}/comments", commentHandler.ListArticleComments)
			r.Post("/{article_id}/comments", commentHandler.CreateComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{comment_id}", commentHandler.PatchCommentVotes)
			r.Delete("/{comment_id}", commentHandler.DeleteComment)
		})

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{username}", userHandler.GetUserByUsername)
	})

	// Unmatched paths and methods both report the same not-found shape;
	// clients see one taxonomy for "no such endpoint".
	notFound := func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "endpoint not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// routesDocJSON renders the route tree as JSON via docgen. The router
// is built without stores; documentation generation never invokes a
// handler.
func routesDocJSON() (string, error) {
	app := &application{logger: slog.Default()}
	return docgen.JSONRoutesDoc(app.setupRouter()), nil
}
