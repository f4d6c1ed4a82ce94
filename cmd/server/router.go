package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/hector00/bloglist-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The extractor only captures the raw bearer token; the blog create
	// handler decides whether the request is actually authorized.
	r.Use(apiMiddleware.TokenExtractor)

	authHandler, userHandler, blogHandler := app.handlers()

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)

		r.Get("/blogs", blogHandler.List)
		r.Get("/blogs/{id}", blogHandler.Get)
		r.Post("/blogs", blogHandler.Create)
		r.Patch("/blogs/{id}", blogHandler.Update)
		r.Delete("/blogs/{id}", blogHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
