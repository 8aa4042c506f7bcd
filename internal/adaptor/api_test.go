package adaptor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/wire"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	server *httptest.Server
	repo   *repository.Repository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	app := wire.Wiring(repo, config, zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	return &testAPI{t: t, server: server, repo: repo}
}

func (api *testAPI) do(method, path, token string, body any) *http.Response {
	api.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(api.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, api.server.URL+path, reader)
	require.NoError(api.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := api.server.Client().Do(req)
	require.NoError(api.t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// register creates an account through the API and returns the session token
// and user id.
func (api *testAPI) register(username string) (string, int64) {
	api.t.Helper()

	resp := api.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(api.t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	decode(api.t, resp, &body)
	require.NotEmpty(api.t, body.Token)
	return body.Token, body.User.ID
}

// adminToken seeds an admin account directly in the store and opens a session
// for it. Registration only hands out the regular role.
func (api *testAPI) adminToken() string {
	api.t.Helper()

	admin := &entity.User{
		Username: "admin",
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
	}
	require.NoError(api.t, api.repo.User.Create(context.Background(), admin))

	session := &entity.Session{
		UserID:    admin.ID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(api.t, api.repo.Session.Create(context.Background(), session))
	return session.Token.String()
}

func (api *testAPI) createMovie(adminToken, title string, year int) int64 {
	api.t.Helper()

	resp := api.do(http.MethodPost, "/admin/movies", adminToken, map[string]any{
		"title":    title,
		"genres":   []string{"Drama"},
		"year":     year,
		"director": "Someone",
	})
	require.Equal(api.t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID int64 `json:"id"`
	}
	decode(api.t, resp, &body)
	return body.ID
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)

	token, _ := api.register("alice")

	t.Run("duplicate email is rejected", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/register", "", map[string]string{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "secret123",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/register", "", map[string]string{
			"username": "alice",
			"email":    "fresh@example.com",
			"password": "secret123",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/logout", token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// The revoked token no longer opens protected routes.
		resp = api.do(http.MethodPost, "/auth/logout", token, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("validation failure", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/auth/register", "", map[string]string{
			"username": "x",
			"email":    "not-an-email",
			"password": "123",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMovieCatalog(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken()

	api.createMovie(admin, "Blade Runner", 1982)
	api.createMovie(admin, "Alien", 1979)
	api.createMovie(admin, "Heat", 1995)

	t.Run("list is public and paginated", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/movies?limit=2&page=1", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Movies      []map[string]any `json:"movies"`
			TotalCount  int64            `json:"totalCount"`
			CurrentPage int              `json:"currentPage"`
			TotalPages  int              `json:"totalPages"`
		}
		decode(t, resp, &body)
		assert.Equal(t, int64(3), body.TotalCount)
		assert.Equal(t, 1, body.CurrentPage)
		assert.Equal(t, 2, body.TotalPages)
		assert.Len(t, body.Movies, 2)
	})

	t.Run("search filters the list", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/movies?search=alien", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			TotalCount int64 `json:"totalCount"`
		}
		decode(t, resp, &body)
		assert.Equal(t, int64(1), body.TotalCount)
	})

	t.Run("detail of unknown movie is 404", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/movies/999", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("catalog writes need the admin role", func(t *testing.T) {
		token, _ := api.register("bob")
		resp := api.do(http.MethodPost, "/admin/movies", token, map[string]any{
			"title": "Nope", "genres": []string{"Horror"}, "year": 2022, "director": "Jordan Peele",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("catalog writes need a session at all", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/admin/movies", "", map[string]any{
			"title": "Nope", "genres": []string{"Horror"}, "year": 2022, "director": "Jordan Peele",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("featured is public", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/movies/featured", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []map[string]any
		decode(t, resp, &body)
		assert.Len(t, body, 3)
	})
}

func TestReviewFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken()
	movieID := api.createMovie(admin, "Arrival", 2016)

	aliceToken, _ := api.register("alice")
	bobToken, _ := api.register("bob")

	reviewPath := fmt.Sprintf("/movies/%d/reviews", movieID)

	t.Run("posting needs a session", func(t *testing.T) {
		resp := api.do(http.MethodPost, reviewPath, "", map[string]any{"rating": 5, "comment": "great"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("post and aggregate", func(t *testing.T) {
		resp := api.do(http.MethodPost, reviewPath, aliceToken, map[string]any{"rating": 4, "comment": "thoughtful"})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = api.do(http.MethodPost, reviewPath, bobToken, map[string]any{"rating": 5, "comment": "loved it"})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		detail := api.do(http.MethodGet, fmt.Sprintf("/movies/%d", movieID), "", nil)
		require.Equal(t, http.StatusOK, detail.StatusCode)

		var body struct {
			Rating      float64          `json:"rating"`
			ReviewCount int64            `json:"reviewCount"`
			Reviews     []map[string]any `json:"reviews"`
		}
		decode(t, detail, &body)
		assert.Equal(t, 4.5, body.Rating)
		assert.Equal(t, int64(2), body.ReviewCount)
		assert.Len(t, body.Reviews, 2)
	})

	t.Run("second review by the same user conflicts", func(t *testing.T) {
		resp := api.do(http.MethodPost, reviewPath, aliceToken, map[string]any{"rating": 1, "comment": "changed my mind"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("review on unknown movie is 404", func(t *testing.T) {
		resp := api.do(http.MethodPost, "/movies/999/reviews", aliceToken, map[string]any{"rating": 3, "comment": "?"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("long comments are accepted", func(t *testing.T) {
		carolToken, _ := api.register("carol")

		// The only body constraint is non-empty.
		comment := strings.Repeat("a thorough analysis ", 100)
		resp := api.do(http.MethodPost, reviewPath, carolToken, map[string]any{"rating": 4, "comment": comment})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		resp := api.do(http.MethodPost, reviewPath, bobToken, map[string]any{"rating": 3, "comment": ""})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rating outside 1-5 is rejected", func(t *testing.T) {
		resp := api.do(http.MethodPost, reviewPath, bobToken, map[string]any{"rating": 6, "comment": "!"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reading reviews is public", func(t *testing.T) {
		resp := api.do(http.MethodGet, reviewPath, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []map[string]any
		decode(t, resp, &body)
		assert.Len(t, body, 3)
	})
}

func TestWatchlistFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken()
	movieID := api.createMovie(admin, "Heat", 1995)

	aliceToken, aliceID := api.register("alice")
	bobToken, _ := api.register("bob")

	watchlistPath := fmt.Sprintf("/users/%d/watchlist", aliceID)

	t.Run("requires a session", func(t *testing.T) {
		resp := api.do(http.MethodGet, watchlistPath, "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("add and list", func(t *testing.T) {
		resp := api.do(http.MethodPost, watchlistPath, aliceToken, map[string]any{"movieId": movieID})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		list := api.do(http.MethodGet, watchlistPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, list.StatusCode)

		var body []struct {
			MovieID int64 `json:"movieId"`
			Movie   struct {
				Title string `json:"title"`
			} `json:"movie"`
		}
		decode(t, list, &body)
		require.Len(t, body, 1)
		assert.Equal(t, movieID, body[0].MovieID)
		assert.Equal(t, "Heat", body[0].Movie.Title)
	})

	t.Run("duplicate add conflicts", func(t *testing.T) {
		resp := api.do(http.MethodPost, watchlistPath, aliceToken, map[string]any{"movieId": movieID})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("another user's watchlist is forbidden", func(t *testing.T) {
		resp := api.do(http.MethodGet, watchlistPath, bobToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("remove then repeated remove", func(t *testing.T) {
		itemPath := fmt.Sprintf("%s/%d", watchlistPath, movieID)

		resp := api.do(http.MethodDelete, itemPath, aliceToken, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = api.do(http.MethodDelete, itemPath, aliceToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUserEndpoints(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken()
	movieID := api.createMovie(admin, "Alien", 1979)

	aliceToken, aliceID := api.register("alice")

	resp := api.do(http.MethodPost, fmt.Sprintf("/movies/%d/reviews", movieID), aliceToken,
		map[string]any{"rating": 5, "comment": "classic"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("public profile", func(t *testing.T) {
		resp := api.do(http.MethodGet, fmt.Sprintf("/users/%d", aliceID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Username string `json:"username"`
		}
		decode(t, resp, &body)
		assert.Equal(t, "alice", body.Username)
	})

	t.Run("review history is public", func(t *testing.T) {
		resp := api.do(http.MethodGet, fmt.Sprintf("/users/%d/reviews", aliceID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []map[string]any
		decode(t, resp, &body)
		assert.Len(t, body, 1)
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		resp := api.do(http.MethodGet, "/users/999", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
