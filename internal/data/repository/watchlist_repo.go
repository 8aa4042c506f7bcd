package repository

import (
	"context"
	"sync"

	"movie-review/internal/data/entity"

	"go.uber.org/zap"
)

type WatchlistRepository interface {
	// Add assigns the next id and stores the item. Returns ErrAlreadyExists
	// when the (user, movie) pair is already listed; the check and the
	// insert are atomic.
	Add(ctx context.Context, item *entity.WatchlistItem) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistItem, error)
	// Remove deletes the pair's item. Returns ErrNotFound when no item
	// matches, so a repeated delete reports the miss instead of succeeding.
	Remove(ctx context.Context, userID, movieID int64) error
}

type watchlistMemoryRepository struct {
	mu     sync.RWMutex
	items  []entity.WatchlistItem
	nextID int64
	log    *zap.Logger
}

func NewWatchlistMemoryRepository(log *zap.Logger) WatchlistRepository {
	return &watchlistMemoryRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistMemoryRepository) Add(ctx context.Context, item *entity.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].UserID == item.UserID && r.items[i].MovieID == item.MovieID {
			return ErrAlreadyExists
		}
	}

	// The counter is decoupled from the slice length, so ids survive deletes
	// without reuse.
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)

	return nil
}

func (r *watchlistMemoryRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.WatchlistItem
	for i := range r.items {
		if r.items[i].UserID == userID {
			item := r.items[i]
			out = append(out, &item)
		}
	}
	return out, nil
}

func (r *watchlistMemoryRepository) Remove(ctx context.Context, userID, movieID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].UserID == userID && r.items[i].MovieID == movieID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
