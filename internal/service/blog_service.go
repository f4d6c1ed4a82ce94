// Package service contains the application services that coordinate
// stores, transactions, and domain rules on behalf of the API handlers.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/platform/logger"
	"github.com/hector00/bloglist-api/internal/store"
)

// BlogService defines the operations the blog API surface needs.
type BlogService interface {
	// ListBlogs returns all blogs with their owner expanded.
	ListBlogs(ctx context.Context) ([]*store.BlogWithOwner, error)

	// GetBlog returns the blog with the given ID.
	// Returns store.ErrBlogNotFound if absent.
	GetBlog(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// CreateBlog persists a new blog owned by userID and appends the blog
	// reference to that user's blogs list. Both writes happen in a single
	// transaction so a failure cannot leave a blog without its owner link.
	// Returns store.ErrUserNotFound if userID does not resolve to a user,
	// and validation errors naming every violated field.
	CreateBlog(ctx context.Context, userID uuid.UUID, title, author, blogText string) (*domain.Blog, error)

	// UpdateBlog applies a partial update and returns the updated blog.
	UpdateBlog(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error)

	// DeleteBlog removes the blog with the given ID.
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

// blogService is the default BlogService implementation.
type blogService struct {
	db        *sql.DB
	blogStore store.BlogStore
	userStore store.UserStore
	logger    *slog.Logger
}

// Ensure blogService implements BlogService interface
var _ BlogService = (*blogService)(nil)

// NewBlogService creates a BlogService backed by the given database handle
// and stores. The database handle is required for the transactional create.
func NewBlogService(
	db *sql.DB,
	blogStore store.BlogStore,
	userStore store.UserStore,
	log *slog.Logger,
) (BlogService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if blogStore == nil {
		return nil, domain.NewValidationError("blogStore", "cannot be nil", domain.ErrValidation)
	}
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &blogService{
		db:        db,
		blogStore: blogStore,
		userStore: userStore,
		logger:    log.With(slog.String("component", "blog_service")),
	}, nil
}

// ListBlogs implements BlogService.ListBlogs
func (s *blogService) ListBlogs(ctx context.Context) ([]*store.BlogWithOwner, error) {
	return s.blogStore.List(ctx)
}

// GetBlog implements BlogService.GetBlog
func (s *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	return s.blogStore.GetByID(ctx, id)
}

// CreateBlog implements BlogService.CreateBlog
func (s *blogService) CreateBlog(
	ctx context.Context,
	userID uuid.UUID,
	title, author, blogText string,
) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	blog, err := domain.NewBlog(title, author, blogText, userID)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		userStore := s.userStore.WithTx(tx)
		blogStore := s.blogStore.WithTx(tx)

		// Resolve the owner first so a stale token claim fails cleanly
		user, err := userStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if err := blogStore.Create(ctx, blog); err != nil {
			return err
		}

		if err := userStore.AppendBlog(ctx, user.ID, blog.ID); err != nil {
			return fmt.Errorf("failed to append blog to user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", userID.String()))
	return blog, nil
}

// UpdateBlog implements BlogService.UpdateBlog
func (s *blogService) UpdateBlog(
	ctx context.Context,
	id uuid.UUID,
	update store.BlogUpdate,
) (*domain.Blog, error) {
	return s.blogStore.Update(ctx, id, update)
}

// DeleteBlog implements BlogService.DeleteBlog
func (s *blogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return s.blogStore.Delete(ctx, id)
}
