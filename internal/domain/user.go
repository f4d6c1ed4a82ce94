package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered author of the bloglist application.
// Blogs holds the ordered list of blog IDs this user owns; it is appended
// to when the user creates a blog.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Name           string      `json:"name"`
	Password       string      `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword string      `json:"-"` // Never expose the password hash in JSON
	Blogs          []uuid.UUID `json:"blogs"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUser creates a new User with the given username, display name and
// plaintext password. It generates a new UUID and sets timestamps.
// The caller is responsible for hashing the password before storage.
func NewUser(username, name, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Name:      name,
		Password:  password,
		Blogs:     []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Password != "" {
		// bcrypt silently truncates beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash
		return ErrEmptyPassword
	}

	return nil
}
