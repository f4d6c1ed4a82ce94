package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hector00/bloglist-api/internal/api/shared"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMissingIDClaim):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation failures keep their full message
// because it names the violated fields and values, which is part of the
// API contract.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingIDClaim):
		return "token invalid"

	case errors.Is(err, store.ErrUsernameExists):
		return "username already exists"

	case errors.Is(err, store.ErrBlogNotFound):
		return "blog not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, domain.ErrInvalidID):
		return "malformed id"

	case errors.Is(err, domain.ErrValidation):
		// Full validation message names every violated field and value
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError translates err into its HTTP status and safe
// message and writes the response. Server-side failures are logged with
// the raw error and answer with userMessage; client errors carry the
// sanitized message for the mapped status.
func respondWithMappedError(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	userMessage string,
	err error,
) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error(userMessage, "error", err)
		shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
		return
	}

	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
