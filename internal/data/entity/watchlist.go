package entity

import "time"

// WatchlistItem is unique per (UserID, MovieID) pair and deletable by its owner.
type WatchlistItem struct {
	ID      int64     `db:"id"`
	UserID  int64     `db:"user_id"`
	MovieID int64     `db:"movie_id"`
	AddedAt time.Time `db:"added_at"`
}
