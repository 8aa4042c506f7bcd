package request

type AddWatchlistRequest struct {
	MovieID int64 `json:"movieId" validate:"required,gt=0"`
}
