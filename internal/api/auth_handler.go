package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hector00/bloglist-api/internal/api/shared"
	"github.com/hector00/bloglist-api/internal/platform/logger"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/login. It authenticates a username/password pair
// and issues a signed token carrying the user's ID and username. The
// failure message never discloses whether the username or the password
// was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid username or password")
			return
		}
		respondWithMappedError(w, r, log, "failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Username)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"failed to generate authentication token", err)
		return
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
