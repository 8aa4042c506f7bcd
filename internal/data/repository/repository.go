package repository

import (
	"movie-review/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the per-collection stores. The repositories exclusively
// own all record data; services access records only through them.
type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Movie     MovieRepository
	Review    ReviewRepository
	Watchlist WatchlistRepository
}

// NewMemoryRepository builds the default in-memory record store. Each
// collection keeps its own lock and monotonic id counter, so uniqueness
// checks and inserts are atomic per collection.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserMemoryRepository(log),
		Session:   NewSessionMemoryRepository(log),
		Movie:     NewMovieMemoryRepository(log),
		Review:    NewReviewMemoryRepository(log),
		Watchlist: NewWatchlistMemoryRepository(log),
	}
}

// NewPostgresRepository builds the pgx-backed alternative. Uniqueness is
// enforced by the schema's unique constraints.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserPostgresRepository(db, log),
		Session:   NewSessionPostgresRepository(db, log),
		Movie:     NewMoviePostgresRepository(db, log),
		Review:    NewReviewPostgresRepository(db, log),
		Watchlist: NewWatchlistPostgresRepository(db, log),
	}
}
