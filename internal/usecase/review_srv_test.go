package usecase

import (
	"context"
	"testing"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return repository.NewMemoryRepository(zap.NewNop())
}

func seedUser(t *testing.T, repo *repository.Repository, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     entity.RoleUser,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedMovie(t *testing.T, repo *repository.Repository, title string) *entity.Movie {
	t.Helper()

	movie := &entity.Movie{
		Title:       title,
		Genres:      []string{"Drama"},
		ReleaseYear: 2020,
		Director:    "Someone",
	}
	require.NoError(t, repo.Movie.Create(context.Background(), movie))
	return movie
}

func TestReviewServiceCreateRecomputesRating(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Arrival")
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	carol := seedUser(t, repo, "carol")

	for user, rating := range map[*entity.User]int{alice: 4, bob: 5, carol: 4} {
		_, err := svc.Create(ctx, user.ID, movie.ID, &request.CreateReviewRequest{Rating: rating, Comment: "ok"})
		require.NoError(t, err)
	}

	// Mean 13/3 = 4.333..., rounded half up to one decimal.
	updated, err := repo.Movie.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, updated.Rating)
	assert.Equal(t, int64(3), updated.ReviewCount)
}

func TestReviewServiceCreateRoundsHalfUp(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Heat")
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")

	// Mean of 4 and 5 is 4.5, already at one decimal.
	_, err := svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 4, Comment: "good"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, movie.ID, &request.CreateReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	updated, err := repo.Movie.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Rating)
}

func TestReviewServiceCreateDuplicateLeavesAggregateIntact(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Alien")
	alice := seedUser(t, repo, "alice")

	_, err := svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 5, Comment: "classic"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 1, Comment: "changed my mind"})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// The rejected write must not touch the aggregate.
	updated, err := repo.Movie.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Rating)
	assert.Equal(t, int64(1), updated.ReviewCount)
}

func TestReviewServiceCreateUnknownMovie(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())

	alice := seedUser(t, repo, "alice")

	_, err := svc.Create(context.Background(), alice.ID, 999, &request.CreateReviewRequest{Rating: 3, Comment: "?"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestReviewServiceCreateJoinsAuthor(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Heat")
	alice := seedUser(t, repo, "alice")

	resp, err := svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 4, Comment: "good"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, alice.ID, resp.UserID)
	assert.Equal(t, movie.ID, resp.MovieID)
}

func TestReviewServiceListByMovie(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Heat")
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")

	_, err := svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 4, Comment: "good"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, movie.ID, &request.CreateReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	reviews, err := svc.ListByMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "alice", reviews[0].Username)
	assert.Equal(t, "bob", reviews[1].Username)

	t.Run("unknown movie", func(t *testing.T) {
		_, err := svc.ListByMovie(ctx, 999)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestReviewServiceListByUser(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	first := seedMovie(t, repo, "Alien")
	second := seedMovie(t, repo, "Aliens")
	alice := seedUser(t, repo, "alice")

	for _, movie := range []*entity.Movie{first, second} {
		_, err := svc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 5, Comment: "classic"})
		require.NoError(t, err)
	}

	reviews, err := svc.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
