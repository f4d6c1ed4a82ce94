// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes function fields so tests can
// script behavior per call.
package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/store"
)

// MockUserStore is a configurable mock implementation of store.UserStore.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	AppendBlogFn    func(ctx context.Context, userID, blogID uuid.UUID) error
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	if m.AppendBlogFn != nil {
		return m.AppendBlogFn(ctx, userID, blogID)
	}
	return nil
}

// WithTx returns the mock itself; mocks have no transaction semantics.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
