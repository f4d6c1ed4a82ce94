package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector00/bloglist-api/internal/api/shared"
	"github.com/hector00/bloglist-api/internal/domain"
	"github.com/hector00/bloglist-api/internal/mocks"
	"github.com/hector00/bloglist-api/internal/service/auth"
	"github.com/hector00/bloglist-api/internal/store"
)

func testBlog(t *testing.T, userID uuid.UUID) *domain.Blog {
	t.Helper()

	blog, err := domain.NewBlog(
		"drink a lot of water",
		"hector",
		"It's necesary drink a lot of water to be happy",
		userID,
	)
	require.NoError(t, err)
	return blog
}

// blogRouter mounts the handler the way the server does so chi URL
// parameters resolve in tests.
func blogRouter(handler *BlogHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/blogs", handler.List)
	r.Get("/api/blogs/{id}", handler.Get)
	r.Post("/api/blogs", handler.Create)
	r.Patch("/api/blogs/{id}", handler.Update)
	r.Delete("/api/blogs/{id}", handler.Delete)
	return r
}

func serveJSON(t *testing.T, router http.Handler, method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req = req.WithContext(shared.SetToken(req.Context(), token))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func TestBlogHandlerList(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, nil)

	t.Run("lists blogs with expanded owners", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		blog := testBlog(t, userID)
		blogService := &mocks.MockBlogService{
			ListBlogsFn: func(ctx context.Context) ([]*store.BlogWithOwner, error) {
				return []*store.BlogWithOwner{
					{Blog: blog, Owner: &store.BlogOwner{Username: "hector00", Name: "Hector"}},
				}, nil
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []BlogListItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "drink a lot of water", resp[0].Title)
		assert.Equal(t, "hector00", resp[0].User.Username)
		assert.Equal(t, "Hector", resp[0].User.Name)
	})

	t.Run("empty list serializes as an array", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store failure is a single 500", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			ListBlogsFn: func(ctx context.Context) ([]*store.BlogWithOwner, error) {
				return nil, errors.New("boom")
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs", nil, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestBlogHandlerGet(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, nil)

	t.Run("returns blog by id", func(t *testing.T) {
		t.Parallel()

		blog := testBlog(t, uuid.New())
		blogService := &mocks.MockBlogService{
			GetBlogFn: func(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
				require.Equal(t, blog.ID, id)
				return blog, nil
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs/"+blog.ID.String(), nil, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, blog.ID, resp.ID)
		assert.Equal(t, blog.UserID, resp.User)
		assert.Equal(t, blog.BlogText, resp.BlogText)
	})

	t.Run("unknown id is a 404 message", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs/"+uuid.NewString(), nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "blog not found", decodeMessage(t, rec))
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodGet, "/api/blogs/not-a-uuid", nil, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandlerCreate(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, nil)
	userID := uuid.New()

	validToken := func(t *testing.T) string {
		t.Helper()
		token, err := jwtService.GenerateToken(context.Background(), userID, "hector00")
		require.NoError(t, err)
		return token
	}

	validBody := CreateBlogRequest{
		Title:    "drink a lot of water",
		Author:   "hector",
		BlogText: "It's necesary drink a lot of water to be happy",
	}

	t.Run("creates blog for token owner", func(t *testing.T) {
		t.Parallel()

		var gotUserID uuid.UUID
		blogService := &mocks.MockBlogService{
			CreateBlogFn: func(ctx context.Context, uid uuid.UUID, title, author, blogText string) (*domain.Blog, error) {
				gotUserID = uid
				return domain.NewBlog(title, author, blogText, uid)
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", validBody, validToken(t))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, userID, gotUserID)

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "drink a lot of water", resp.Title)
		assert.Equal(t, userID, resp.User)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", validBody, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token invalid", decodeError(t, rec))
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		past := time.Now().Add(-2 * time.Hour)
		expiredIssuer := auth.NewTestJWTService(testJWTSecret, time.Hour, func() time.Time {
			return past
		})
		token, err := expiredIssuer.GenerateToken(context.Background(), userID, "hector00")
		require.NoError(t, err)

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", validBody, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token expired", decodeError(t, rec))
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", validBody, "not.a.token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token invalid", decodeError(t, rec))
	})

	t.Run("token for a vanished user", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			CreateBlogFn: func(ctx context.Context, uid uuid.UUID, title, author, blogText string) (*domain.Blog, error) {
				return nil, store.ErrUserNotFound
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", validBody, validToken(t))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token invalid", decodeError(t, rec))
	})

	t.Run("validation names every violated field", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			CreateBlogFn: func(ctx context.Context, uid uuid.UUID, title, author, blogText string) (*domain.Blog, error) {
				return domain.NewBlog(title, author, blogText, uid)
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPost, "/api/blogs", CreateBlogRequest{
			Title:    "ab",
			Author:   "x",
			BlogText: "short",
		}, validToken(t))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		errMsg := decodeError(t, rec)
		assert.Contains(t, errMsg, "title")
		assert.Contains(t, errMsg, "author")
		assert.Contains(t, errMsg, "blogText")
		assert.Contains(t, errMsg, `"ab"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewReader([]byte("{not json")))
		req = req.WithContext(shared.SetToken(req.Context(), validToken(t)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandlerUpdate(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, nil)

	strPtr := func(s string) *string { return &s }

	t.Run("updates named fields", func(t *testing.T) {
		t.Parallel()

		blog := testBlog(t, uuid.New())
		blogService := &mocks.MockBlogService{
			UpdateBlogFn: func(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error) {
				require.Equal(t, blog.ID, id)
				require.NotNil(t, update.Title)
				assert.Nil(t, update.Author)
				assert.Nil(t, update.BlogText)

				blog.Title = *update.Title
				return blog, nil
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPatch, "/api/blogs/"+blog.ID.String(),
			UpdateBlogRequest{Title: strPtr("a better title")}, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "a better title", resp.Title)
	})

	t.Run("unknown id is a 404 message", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPatch, "/api/blogs/"+uuid.NewString(),
			UpdateBlogRequest{Title: strPtr("a better title")}, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "blog not found", decodeMessage(t, rec))
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			UpdateBlogFn: func(ctx context.Context, id uuid.UUID, update store.BlogUpdate) (*domain.Blog, error) {
				return nil, domain.ValidationErrors{
					{Field: "title", Message: "must be at least 3 characters", Value: "ab"},
				}
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPatch, "/api/blogs/"+uuid.NewString(),
			UpdateBlogRequest{Title: strPtr("ab")}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "title")
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodPatch, "/api/blogs/123",
			UpdateBlogRequest{Title: strPtr("a better title")}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandlerDelete(t *testing.T) {
	t.Parallel()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, nil)

	t.Run("deletes blog", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		var gotID uuid.UUID
		blogService := &mocks.MockBlogService{
			DeleteBlogFn: func(ctx context.Context, blogID uuid.UUID) error {
				gotID = blogID
				return nil
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodDelete, "/api/blogs/"+id.String(), nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, id, gotID)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("deleting an absent blog still succeeds", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			DeleteBlogFn: func(ctx context.Context, blogID uuid.UUID) error {
				return store.ErrBlogNotFound
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodDelete, "/api/blogs/"+uuid.NewString(), nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		t.Parallel()

		router := blogRouter(NewBlogHandler(&mocks.MockBlogService{}, jwtService, nil))

		rec := serveJSON(t, router, http.MethodDelete, "/api/blogs/xyz", nil, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		t.Parallel()

		blogService := &mocks.MockBlogService{
			DeleteBlogFn: func(ctx context.Context, blogID uuid.UUID) error {
				return errors.New("boom")
			},
		}
		router := blogRouter(NewBlogHandler(blogService, jwtService, nil))

		rec := serveJSON(t, router, http.MethodDelete, "/api/blogs/"+uuid.NewString(), nil, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
