package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector00/bloglist-api/internal/config"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           10,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()

		_, err := NewJWTService(testAuthConfig("too-short"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts sufficiently long secret", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testAuthConfig(testSecret))
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTestJWTService(testSecret, time.Hour, nil)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID, "hector00")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "hector00", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		issuedAt := time.Now().Add(-2 * time.Hour)
		issuer := NewTestJWTService(testSecret, time.Hour, func() time.Time {
			return issuedAt
		})

		token, err := issuer.GenerateToken(ctx, userID, "hector00")
		require.NoError(t, err)

		validator := NewTestJWTService(testSecret, time.Hour, nil)
		_, err = validator.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()

		issuer := NewTestJWTService("a-completely-different-signing-secret!!", time.Hour, nil)
		token, err := issuer.GenerateToken(ctx, userID, "hector00")
		require.NoError(t, err)

		validator := NewTestJWTService(testSecret, time.Hour, nil)
		_, err = validator.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		svc := NewTestJWTService(testSecret, time.Hour, nil)
		_, err := svc.ValidateToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		svc := NewTestJWTService(testSecret, time.Hour, nil)
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("signed token without time claims", func(t *testing.T) {
		t.Parallel()

		// A token signed with the right key but lacking iat/exp must be
		// rejected, not panic on the nil time claims.
		claims := jwtCustomClaims{UserID: userID, Username: "hector00"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(testSecret))
		require.NoError(t, err)

		svc := NewTestJWTService(testSecret, time.Hour, nil)
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid token without user ID claim", func(t *testing.T) {
		t.Parallel()

		svc := NewTestJWTService(testSecret, time.Hour, nil)
		token, err := svc.GenerateToken(ctx, uuid.Nil, "hector00")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrMissingIDClaim)
	})
}

func TestTokenLifetimeIsConfigurable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTestJWTService(testSecret, 5*time.Minute, nil)

	token, err := svc.GenerateToken(ctx, uuid.New(), "hector00")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.WithinDuration(t, claims.IssuedAt.Add(5*time.Minute), claims.ExpiresAt, time.Second)
}
