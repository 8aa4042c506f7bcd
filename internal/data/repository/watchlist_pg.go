package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"go.uber.org/zap"
)

type watchlistPostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistPostgresRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistPostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistPostgresRepository) Add(ctx context.Context, item *entity.WatchlistItem) error {
	// (user_id, movie_id) carries a unique constraint
	query := `
		INSERT INTO watchlist_items (user_id, movie_id, added_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		item.UserID,
		item.MovieID,
		item.AddedAt,
	).Scan(&item.ID)

	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		r.log.Error("Failed to add watchlist item",
			zap.Error(err),
			zap.Int64("user_id", item.UserID),
			zap.Int64("movie_id", item.MovieID),
		)
		return fmt.Errorf("add movie %d to watchlist of user %d: %w",
			item.MovieID, item.UserID, err)
	}

	return nil
}

func (r *watchlistPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.WatchlistItem, error) {
	query := `
		SELECT id, user_id, movie_id, added_at
		FROM watchlist_items
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlist items",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find watchlist of user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.WatchlistItem
	for rows.Next() {
		var item entity.WatchlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.MovieID, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *watchlistPostgresRepository) Remove(ctx context.Context, userID, movieID int64) error {
	query := `DELETE FROM watchlist_items WHERE user_id = $1 AND movie_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to remove watchlist item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("remove movie %d from watchlist of user %d: %w", movieID, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
