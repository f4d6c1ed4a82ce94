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

// PostgresBlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlogStore creates a new PostgreSQL implementation of the
// BlogStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresBlogStore(db store.DBTX, logger *slog.Logger) *PostgresBlogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure PostgresBlogStore implements store.BlogStore interface
var _ store.BlogStore = (*PostgresBlogStore)(nil)

// WithTx implements store.BlogStore.WithTx
func (s *PostgresBlogStore) WithTx(tx *sql.Tx) store.BlogStore {
	return &PostgresBlogStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.BlogStore.Create
// It validates the blog before writing so every persisted blog meets the
// minimum field lengths. Returns store.ErrInvalidEntity if the owning
// user does not exist (foreign key violation).
func (s *PostgresBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return err
	}

	query := `
		INSERT INTO blogs (id, title, author, blog_text, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.BlogText,
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.String("blog_id", blog.ID.String()),
				slog.String("user_id", blog.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, blog.UserID)
		}

		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()),
			slog.String("user_id", blog.UserID.String()))
		return MapError(err)
	}

	log.Info("blog created successfully",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", blog.UserID.String()))
	return nil
}

// GetByID implements store.BlogStore.GetByID
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *PostgresBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, blog_text, user_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.BlogText,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found", slog.String("blog_id", id.String()))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to get blog by ID",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, err
	}

	return &blog, nil
}

// List implements store.BlogStore.List
// Each blog carries its owner expanded to {username, name}.
func (s *PostgresBlogStore) List(ctx context.Context) ([]*store.BlogWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT b.id, b.title, b.author, b.blog_text, b.user_id,
		       b.created_at, b.updated_at, u.username, u.name
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	blogs := []*store.BlogWithOwner{}
	for rows.Next() {
		var blog domain.Blog
		var owner store.BlogOwner
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Author,
			&blog.BlogText,
			&blog.UserID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
			&owner.Username,
			&owner.Name,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, &store.BlogWithOwner{Blog: &blog, Owner: &owner})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// Update implements store.BlogStore.Update
// It merges the non-nil fields into the stored record, re-validates the
// merged record, and writes it back. Returns store.ErrBlogNotFound if the
// blog does not exist.
func (s *PostgresBlogStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.BlogUpdate,
) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	blog, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Author != nil {
		blog.Author = *update.Author
	}
	if update.BlogText != nil {
		blog.BlogText = *update.BlogText
	}
	blog.UpdatedAt = time.Now().UTC()

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during update",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, err
	}

	query := `
		UPDATE blogs
		SET title = $1, author = $2, blog_text = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		blog.Title,
		blog.Author,
		blog.BlogText,
		blog.UpdatedAt,
		id,
	)
	if err != nil {
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, "blog"); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrBlogNotFound, err)
	}

	log.Info("blog updated successfully", slog.String("blog_id", id.String()))
	return blog, nil
}

// Delete implements store.BlogStore.Delete
// Returns store.ErrBlogNotFound if the blog does not exist; callers that
// want unconditional deletes treat that as success.
func (s *PostgresBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// user_blogs rows cascade with the blog
	query := `DELETE FROM blogs WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "blog"); err != nil {
		log.Debug("blog not found for delete", slog.String("blog_id", id.String()))
		return fmt.Errorf("%w: %v", store.ErrBlogNotFound, err)
	}

	log.Info("blog deleted successfully", slog.String("blog_id", id.String()))
	return nil
}
