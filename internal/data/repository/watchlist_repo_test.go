package repository

import (
	"context"
	"testing"

	"movie-review/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchlistRepositoryAddUniquePerUserAndMovie(t *testing.T) {
	repo := NewWatchlistMemoryRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &entity.WatchlistItem{UserID: 1, MovieID: 1}))

	t.Run("same pair conflicts", func(t *testing.T) {
		err := repo.Add(ctx, &entity.WatchlistItem{UserID: 1, MovieID: 1})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("other users keep their own lists", func(t *testing.T) {
		assert.NoError(t, repo.Add(ctx, &entity.WatchlistItem{UserID: 2, MovieID: 1}))
	})
}

func TestWatchlistRepositoryRemove(t *testing.T) {
	repo := NewWatchlistMemoryRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &entity.WatchlistItem{UserID: 1, MovieID: 1}))

	require.NoError(t, repo.Remove(ctx, 1, 1))

	t.Run("repeated delete reports the miss", func(t *testing.T) {
		assert.ErrorIs(t, repo.Remove(ctx, 1, 1), ErrNotFound)
	})

	t.Run("list is empty after removal", func(t *testing.T) {
		items, err := repo.FindByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestWatchlistRepositoryIDsSurviveDeletes(t *testing.T) {
	repo := NewWatchlistMemoryRepository(zap.NewNop())
	ctx := context.Background()

	first := &entity.WatchlistItem{UserID: 1, MovieID: 1}
	require.NoError(t, repo.Add(ctx, first))
	require.Equal(t, int64(1), first.ID)

	require.NoError(t, repo.Remove(ctx, 1, 1))

	// The counter keeps advancing; freed ids are never handed out again.
	second := &entity.WatchlistItem{UserID: 1, MovieID: 2}
	require.NoError(t, repo.Add(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestWatchlistRepositoryFindByUserID(t *testing.T) {
	repo := NewWatchlistMemoryRepository(zap.NewNop())
	ctx := context.Background()

	for movie := int64(1); movie <= 3; movie++ {
		require.NoError(t, repo.Add(ctx, &entity.WatchlistItem{UserID: 1, MovieID: movie}))
	}
	require.NoError(t, repo.Add(ctx, &entity.WatchlistItem{UserID: 2, MovieID: 1}))

	items, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.MovieID)
	}
}
