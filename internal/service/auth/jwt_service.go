package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's ID and
	// username. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Fails with ErrExpiredToken for tokens past their validity
	// window and ErrInvalidToken for malformed or tampered tokens; callers
	// must distinguish the two to choose the correct HTTP status.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the token payload: the user's ID and username plus the
// standard registered claims we surface to callers.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"id"`

	// Username is the user's login name at issue time.
	Username string `json:"username,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
