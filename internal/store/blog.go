package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
)

// BlogOwner is the expanded owner reference returned alongside blogs when
// listing. It mirrors the populated {username, name} projection.
type BlogOwner struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// BlogWithOwner pairs a blog with its expanded owner reference.
type BlogWithOwner struct {
	Blog  *domain.Blog
	Owner *BlogOwner
}

// BlogUpdate describes a partial update of a blog. Nil fields are left
// unchanged. Non-nil fields are validated against the blog's minimum
// length constraints before being written.
type BlogUpdate struct {
	Title    *string
	Author   *string
	BlogText *string
}

// BlogStore defines the interface for blog data persistence.
// The store enforces the blog field minimums at write time.
type BlogStore interface {
	// Create saves a new blog to the store.
	// Returns validation errors naming every violated field if data is
	// invalid, and ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// List returns all blogs with the owner reference expanded to
	// {username, name}.
	List(ctx context.Context) ([]*BlogWithOwner, error)

	// Update applies a partial update to the blog with the given ID and
	// returns the updated record.
	// Returns ErrBlogNotFound if the blog does not exist.
	Update(ctx context.Context, id uuid.UUID, update BlogUpdate) (*domain.Blog, error)

	// Delete removes the blog with the given ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a BlogStore bound to the provided transaction so
	// multiple operations can execute atomically.
	WithTx(tx *sql.Tx) BlogStore
}
