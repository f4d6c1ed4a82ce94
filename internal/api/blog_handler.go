// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hector00/bloglist-api/internal/api/shared"
	"github.com/hector00/bloglist-api/internal/platform/logger"
	"github.com/hector00/bloglist-api/internal/service"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

// BlogHandler handles blog-related HTTP requests.
//
// Only Create is authenticated: it validates the bearer token the
// extractor middleware put in the request context. Update and Delete
// intentionally perform no ownership or authentication check, matching
// the original API surface.
type BlogHandler struct {
	blogService service.BlogService
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(
	blogService service.BlogService,
	jwtService auth.JWTService,
	log *slog.Logger,
) *BlogHandler {
	if log == nil {
		log = slog.Default()
	}

	return &BlogHandler{
		blogService: blogService,
		jwtService:  jwtService,
		logger:      log.With(slog.String("component", "blog_handler")),
	}
}

// List handles GET /api/blogs. Each blog's owner is expanded to
// {username, name}. A store failure produces a single 500 response.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	blogs, err := h.blogService.ListBlogs(r.Context())
	if err != nil {
		respondWithMappedError(w, r, log, "failed to list blogs", err)
		return
	}

	response := make([]BlogListItem, 0, len(blogs))
	for _, b := range blogs {
		response = append(response, blogToListItem(b))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /api/blogs/{id}. A malformed ID is a 400 cast failure,
// distinct from the 404 for a well-formed ID with no record.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogService.GetBlog(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithJSON(w, r, http.StatusNotFound,
				shared.MessageResponse{Message: "blog not found"})
			return
		}
		respondWithMappedError(w, r, log, "failed to get blog", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blogToResponse(blog))
}

// Create handles POST /api/blogs. It requires a valid, unexpired bearer
// token whose claims carry a user ID; the new blog is linked to that user
// and the user's blogs list grows by one, atomically.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tokenString := shared.GetToken(r.Context())
	if tokenString == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			GetSafeErrorMessage(auth.ErrMissingToken))
		return
	}

	claims, err := h.jwtService.ValidateToken(r.Context(), tokenString)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, GetSafeErrorMessage(err))
		return
	}

	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	blog, err := h.blogService.CreateBlog(
		r.Context(),
		claims.UserID,
		req.Title,
		req.Author,
		req.BlogText,
	)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// The token's id claim resolves to no user
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				GetSafeErrorMessage(auth.ErrInvalidToken))
			return
		}
		respondWithMappedError(w, r, log, "failed to create blog", err)
		return
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", claims.UserID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, blogToResponse(blog))
}

// Update handles PATCH /api/blogs/{id}. Absent body fields are left
// unchanged; named fields replace the stored values after store-side
// re-validation. No ownership check is performed.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	blog, err := h.blogService.UpdateBlog(r.Context(), id, store.BlogUpdate{
		Title:    req.Title,
		Author:   req.Author,
		BlogText: req.BlogText,
	})
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithJSON(w, r, http.StatusNotFound,
				shared.MessageResponse{Message: "blog not found"})
			return
		}
		respondWithMappedError(w, r, log, "failed to update blog", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blogToResponse(blog))
}

// Delete handles DELETE /api/blogs/{id}. Deletion is unconditional: a
// well-formed ID with no record still yields an empty success. No
// ownership check is performed.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.blogService.DeleteBlog(r.Context(), id); err != nil {
		if !errors.Is(err, store.ErrBlogNotFound) {
			respondWithMappedError(w, r, log, "failed to delete blog", err)
			return
		}
		// Deleting an absent blog is still a success
	}

	w.WriteHeader(http.StatusNoContent)
}
