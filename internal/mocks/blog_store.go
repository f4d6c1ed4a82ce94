package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/store"
)

// MockBlogStore is a configurable mock implementation of store.BlogStore.
type MockBlogStore struct {
	CreateFn  func(ctx context.Context, blog *domain.Blog) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFn    func(ctx context.Context) ([]*store.BlogWithOwner, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

// Ensure MockBlogStore implements store.BlogStore
var _ store.BlogStore = (*MockBlogStore)(nil)

func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}
	return nil
}

func (m *MockBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrBlogNotFound
}

func (m *MockBlogStore) List(ctx context.Context) ([]*store.BlogWithOwner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockBlogStore) Update(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, store.ErrBlogNotFound
}

func (m *MockBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx returns the mock itself; mocks have no transaction semantics.
func (m *MockBlogStore) WithTx(tx *sql.Tx) store.BlogStore {
	return m
}
