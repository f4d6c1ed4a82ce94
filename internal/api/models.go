package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/store"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// UserResponse defines the outbound user representation. The password
// hash is never part of it.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Blogs    []uuid.UUID `json:"blogs"`
}

// CreateBlogRequest defines the payload for the blog create endpoint.
// Field minimums are enforced by the store, not here, so the response can
// name every violated field at once.
type CreateBlogRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	BlogText string `json:"blogText"`
}

// UpdateBlogRequest defines the payload for the partial blog update
// endpoint. Absent fields are left unchanged.
type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	BlogText *string `json:"blogText"`
}

// BlogResponse is the outbound blog representation with the owner as a
// plain reference.
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	BlogText  string    `json:"blogText"`
	User      uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogOwnerRef is the expanded owner reference used in blog listings.
type BlogOwnerRef struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// BlogListItem is the outbound blog representation with the owner
// expanded to {username, name}.
type BlogListItem struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	BlogText  string       `json:"blogText"`
	User      BlogOwnerRef `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// blogToResponse converts a domain blog to its response shape.
func blogToResponse(blog *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Author:    blog.Author,
		BlogText:  blog.BlogText,
		User:      blog.UserID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// blogToListItem converts a blog with its expanded owner to its response shape.
func blogToListItem(b *store.BlogWithOwner) BlogListItem {
	return BlogListItem{
		ID:        b.Blog.ID,
		Title:     b.Blog.Title,
		Author:    b.Blog.Author,
		BlogText:  b.Blog.BlogText,
		User:      BlogOwnerRef{Username: b.Owner.Username, Name: b.Owner.Name},
		CreatedAt: b.Blog.CreatedAt,
		UpdatedAt: b.Blog.UpdatedAt,
	}
}

// userToResponse converts a domain user to its response shape.
func userToResponse(user *domain.User) UserResponse {
	blogs := user.Blogs
	if blogs == nil {
		blogs = []uuid.UUID{}
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    blogs,
	}
}
