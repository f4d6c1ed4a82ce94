package api

import (
	"log/slog"
	"net/http"

	"github.com/hector00/bloglist-api/internal/api/shared"
	"github.com/hector00/bloglist-api/internal/config"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/platform/logger"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

// UserHandler handles the user registration and listing endpoints.
type UserHandler struct {
	userStore  store.UserStore
	authConfig config.AuthConfig
	logger     *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	authConfig config.AuthConfig,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userStore:  userStore,
		authConfig: authConfig,
		logger:     log.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/users. It hashes the password and persists the
// user; the response never carries the hash.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Username, req.Name, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid user data: "+err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password, h.authConfig.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"failed to create user", err)
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		// The duplicate-username conflict and any other store failure both
		// route through the shared error mapping.
		respondWithMappedError(w, r, log, "failed to create user", err)
		return
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// List handles GET /api/users. Each user carries the ordered list of blog
// IDs they own.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	users, err := h.userStore.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, log, "failed to list users", err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, userToResponse(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
