package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/service"
	"github.com/hector00/bloglist-api/internal/store"
)

// MockBlogService is a configurable mock implementation of service.BlogService.
type MockBlogService struct {
	ListBlogsFn  func(ctx context.Context) ([]*store.BlogWithOwner, error)
	GetBlogFn    func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	CreateBlogFn func(ctx context.Context, userID uuid.UUID, title, author, blogText string) (*domain.Blog, error)
	UpdateBlogFn func(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error)
	DeleteBlogFn func(ctx context.Context, id uuid.UUID) error
}

// Ensure MockBlogService implements service.BlogService
var _ service.BlogService = (*MockBlogService)(nil)

func (m *MockBlogService) ListBlogs(ctx context.Context) ([]*store.BlogWithOwner, error) {
	if m.ListBlogsFn != nil {
		return m.ListBlogsFn(ctx)
	}
	return nil, nil
}

func (m *MockBlogService) GetBlog(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetBlogFn != nil {
		return m.GetBlogFn(ctx, id)
	}
	return nil, store.ErrBlogNotFound
}

func (m *MockBlogService) CreateBlog(
	ctx context.Context,
	userID uuid.UUID,
	title, author, blogText string,
) (*domain.Blog, error) {
	if m.CreateBlogFn != nil {
		return m.CreateBlogFn(ctx, userID, title, author, blogText)
	}
	return domain.NewBlog(title, author, blogText, userID)
}

func (m *MockBlogService) UpdateBlog(
	ctx context.Context,
	id uuid.UUID,
	update store.BlogUpdate,
) (*domain.Blog, error) {
	if m.UpdateBlogFn != nil {
		return m.UpdateBlogFn(ctx, id, update)
	}
	return nil, store.ErrBlogNotFound
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if m.DeleteBlogFn != nil {
		return m.DeleteBlogFn(ctx, id)
	}
	return nil
}
