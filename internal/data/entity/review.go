package entity

// Review is append-only; at most one per (UserID, MovieID) pair.
type Review struct {
	Base
	UserID  int64  `db:"user_id"`
	MovieID int64  `db:"movie_id"`
	Rating  int    `db:"rating"` // 1-5
	Comment string `db:"comment"`
}
