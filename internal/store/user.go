package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext is never persisted.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, including the ordered
	// list of blog IDs the user owns.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by exact username match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users, each with their ordered blog ID list.
	List(ctx context.Context) ([]*domain.User, error)

	// AppendBlog appends a blog reference to the end of the user's blogs
	// list and bumps the user's updated_at timestamp.
	// Returns ErrUserNotFound if the user does not exist.
	AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error

	// WithTx returns a UserStore bound to the provided transaction so
	// multiple operations can execute atomically. The transaction is
	// created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
