package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type WatchlistItemResponse struct {
	ID      int64     `json:"id"`
	MovieID int64     `json:"movieId"`
	AddedAt time.Time `json:"addedAt"`

	// Movie summary is joined on list reads; nil right after an add.
	Movie *MovieResponse `json:"movie,omitempty"`
}

func WatchlistItemToResponse(item *entity.WatchlistItem, movie *entity.Movie) WatchlistItemResponse {
	resp := WatchlistItemResponse{
		ID:      item.ID,
		MovieID: item.MovieID,
		AddedAt: item.AddedAt,
	}

	if movie != nil {
		m := MovieToResponse(movie)
		resp.Movie = &m
	}

	return resp
}
