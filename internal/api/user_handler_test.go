package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector00/bloglist-api/internal/config"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/mocks"
	"github.com/hector00/bloglist-api/internal/store"
)

func testHandlerAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           4, // bcrypt.MinCost keeps the tests fast
	}
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("registers a user", func(t *testing.T) {
		t.Parallel()

		var created *domain.User
		userStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		handler := NewUserHandler(userStore, testHandlerAuthConfig(), nil)

		rec := postJSON(t, handler.Create, "/api/users", RegisterRequest{
			Username: "hector00",
			Name:     "Hector",
			Password: "antonio",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		require.NotNil(t, created)
		assert.Empty(t, created.Password)
		assert.NotEmpty(t, created.HashedPassword)
		assert.NotEqual(t, "antonio", created.HashedPassword)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "hector00", resp.Username)
		assert.Equal(t, "Hector", resp.Name)
		assert.Empty(t, resp.Blogs)

		// Neither the plaintext nor the hash leaks into the body
		assert.NotContains(t, rec.Body.String(), "antonio")
		assert.NotContains(t, rec.Body.String(), created.HashedPassword)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrUsernameExists
			},
		}
		handler := NewUserHandler(userStore, testHandlerAuthConfig(), nil)

		rec := postJSON(t, handler.Create, "/api/users", RegisterRequest{
			Username: "hector00",
			Name:     "Hector",
			Password: "antonio",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "username already exists", decodeError(t, rec))
	})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{name: "missing username", req: RegisterRequest{Name: "Hector", Password: "antonio"}},
		{name: "short username", req: RegisterRequest{Username: "ab", Name: "Hector", Password: "antonio"}},
		{name: "missing name", req: RegisterRequest{Username: "hector00", Password: "antonio"}},
		{name: "short password", req: RegisterRequest{Username: "hector00", Name: "Hector", Password: "ab"}},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewUserHandler(&mocks.MockUserStore{}, testHandlerAuthConfig(), nil)
			rec := postJSON(t, handler.Create, "/api/users", tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUserHandlerList(t *testing.T) {
	t.Parallel()

	t.Run("lists users with their blog refs", func(t *testing.T) {
		t.Parallel()

		blogID := uuid.New()
		users := []*domain.User{
			{
				ID:             uuid.New(),
				Username:       "hector00",
				Name:           "Hector",
				HashedPassword: "hash",
				Blogs:          []uuid.UUID{blogID},
			},
			{
				ID:             uuid.New(),
				Username:       "maria",
				Name:           "Maria",
				HashedPassword: "hash",
			},
		}
		userStore := &mocks.MockUserStore{
			ListFn: func(ctx context.Context) ([]*domain.User, error) {
				return users, nil
			},
		}
		handler := NewUserHandler(userStore, testHandlerAuthConfig(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, []uuid.UUID{blogID}, resp[0].Blogs)
		assert.NotNil(t, resp[1].Blogs)
		assert.Empty(t, resp[1].Blogs)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		t.Parallel()

		userStore := &mocks.MockUserStore{
			ListFn: func(ctx context.Context) ([]*domain.User, error) {
				return nil, errors.New("boom")
			},
		}
		handler := NewUserHandler(userStore, testHandlerAuthConfig(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
