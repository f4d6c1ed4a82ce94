package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/platform/logger"
	"github.com/hector00/bloglist-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// Returns store.ErrUsernameExists if the username is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	query := `
		INSERT INTO users (id, username, name, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Name,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate username during user creation",
				slog.String("username", user.Username))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, name, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	if err := s.loadBlogRefs(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, name, hashed_password, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	if err := s.loadBlogRefs(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, name, hashed_password, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Name,
			&user.HashedPassword,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, user := range users {
		if err := s.loadBlogRefs(ctx, user); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// AppendBlog implements store.UserStore.AppendBlog
// The blog reference lands at the end of the user's ordered blogs list.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_blogs (user_id, blog_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM user_blogs
		WHERE user_id = $1
	`
	_, err := s.db.ExecContext(ctx, query, userID, blogID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("append blog failed: user does not exist",
				slog.String("user_id", userID.String()),
				slog.String("blog_id", blogID.String()))
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		log.Error("failed to append blog to user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("blog_id", blogID.String()))
		return MapError(err)
	}

	touch := `UPDATE users SET updated_at = $1 WHERE id = $2`
	result, err := s.db.ExecContext(ctx, touch, time.Now().UTC(), userID)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "user"); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
	}

	log.Debug("blog appended to user",
		slog.String("user_id", userID.String()),
		slog.String("blog_id", blogID.String()))
	return nil
}

// loadBlogRefs fills in the user's ordered blog ID list from user_blogs.
func (s *PostgresUserStore) loadBlogRefs(ctx context.Context, user *domain.User) error {
	query := `
		SELECT blog_id
		FROM user_blogs
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	blogs := []uuid.UUID{}
	for rows.Next() {
		var blogID uuid.UUID
		if err := rows.Scan(&blogID); err != nil {
			return err
		}
		blogs = append(blogs, blogID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	user.Blogs = blogs
	return nil
}
