package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hector00/bloglist-api/internal/api"
	"github.com/hector00/bloglist-api/internal/config"
	"github.com/hector00/bloglist-api/internal/platform/postgres"
	"github.com/hector00/bloglist-api/internal/service"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

// application holds the wired dependencies for the server process.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	blogStore        store.BlogStore
	blogService      service.BlogService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the database, runs migrations, and builds
// the stores, services, and handlers' collaborators.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	blogStore := postgres.NewPostgresBlogStore(db, logger)

	blogService, err := service.NewBlogService(db, blogStore, userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		blogStore:        blogStore,
		blogService:      blogService,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// handlers builds the API handlers from the application's services.
func (app *application) handlers() (*api.AuthHandler, *api.UserHandler, *api.BlogHandler) {
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userStore, app.config.Auth, app.logger)
	blogHandler := api.NewBlogHandler(app.blogService, app.jwtService, app.logger)
	return authHandler, userHandler, blogHandler
}

// cleanup releases process-wide resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
