package usecase

import (
	"context"
	"testing"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieServiceCreate(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewMovieService(repo, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Create(ctx, &request.MovieRequest{
		Title:       "Blade Runner",
		Genres:      []string{"Sci-Fi"},
		ReleaseYear: 1982,
		Director:    "Ridley Scott",
		Cast: []request.CastMemberRequest{
			{Name: "Harrison Ford", Role: "Deckard"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Blade Runner", resp.Title)
	assert.Zero(t, resp.Rating)
	assert.Zero(t, resp.ReviewCount)
	// Missing posters get a derived placeholder.
	assert.NotEmpty(t, resp.PosterURL)
}

func TestMovieServiceCreateRejectsFarFutureYear(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewMovieService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.MovieRequest{
		Title:       "Time Traveler",
		Genres:      []string{"Sci-Fi"},
		ReleaseYear: time.Now().Year() + 11,
		Director:    "Nobody",
	})
	assert.ErrorIs(t, err, ErrInvalidReleaseYear)
}

func TestMovieServiceUpdate(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewMovieService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Alien")

	newTitle := "Alien: Director's Cut"
	newYear := 2003
	resp, err := svc.Update(ctx, movie.ID, &request.MovieUpdateRequest{
		Title:       &newTitle,
		ReleaseYear: &newYear,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)
	assert.Equal(t, newYear, resp.ReleaseYear)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Someone", resp.Director)

	t.Run("unknown movie", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, &request.MovieUpdateRequest{Title: &newTitle})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestMovieServiceGetByIDEmbedsReviews(t *testing.T) {
	repo := newTestRepo(t)
	movieSvc := NewMovieService(repo, zap.NewNop())
	reviewSvc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	movie := seedMovie(t, repo, "Heat")
	alice := seedUser(t, repo, "alice")

	_, err := reviewSvc.Create(ctx, alice.ID, movie.ID, &request.CreateReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	detail, err := movieSvc.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", detail.Title)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "alice", detail.Reviews[0].Username)

	t.Run("unknown movie", func(t *testing.T) {
		_, err := movieSvc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestMovieServiceListReportsPaging(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewMovieService(repo, zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C", "D", "E"} {
		seedMovie(t, repo, title)
	}

	resp, err := svc.List(ctx, repository.MovieQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Movies, 2)
}
