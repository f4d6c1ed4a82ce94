package domain

import (
	"time"

	"github.com/google/uuid"
)

// Minimum field lengths enforced on every persisted blog.
const (
	MinTitleLen    = 3
	MinAuthorLen   = 3
	MinBlogTextLen = 10
)

// Blog represents a single blog post. UserID references the owning User;
// the owning User's Blogs list carries the reverse link.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	BlogText  string    `json:"blogText"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog owned by the given user.
// It generates a new UUID and sets the creation/update timestamps.
// Returns validation errors naming every violated field if data is invalid.
func NewBlog(title, author, blogText string, userID uuid.UUID) (*Blog, error) {
	now := time.Now().UTC()
	blog := &Blog{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		BlogText:  blogText,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks the Blog's field constraints. Unlike single-error
// validators it collects every violation, so a failed create can report
// all offending fields and values at once.
func (b *Blog) Validate() error {
	var errs ValidationErrors

	if len(b.Title) < MinTitleLen {
		errs = append(errs, &ValidationError{
			Field:   "title",
			Message: "must be at least 3 characters",
			Value:   b.Title,
		})
	}

	if len(b.Author) < MinAuthorLen {
		errs = append(errs, &ValidationError{
			Field:   "author",
			Message: "must be at least 3 characters",
			Value:   b.Author,
		})
	}

	if len(b.BlogText) < MinBlogTextLen {
		errs = append(errs, &ValidationError{
			Field:   "blogText",
			Message: "must be at least 10 characters",
			Value:   b.BlogText,
		})
	}

	if b.UserID == uuid.Nil {
		errs = append(errs, &ValidationError{
			Field:   "user",
			Message: "is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
