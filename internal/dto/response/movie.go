package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Genres      []string            `json:"genres"`
	ReleaseYear int                 `json:"year"`
	Director    string              `json:"director"`
	Cast        []entity.CastMember `json:"cast"`
	Synopsis    *string             `json:"synopsis,omitempty"`
	PosterURL   string              `json:"posterUrl"`
	Rating      float64             `json:"rating"`
	ReviewCount int64               `json:"reviewCount"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// MovieListResponse is the fixed shape of GET /movies.
type MovieListResponse struct {
	Movies      []MovieResponse `json:"movies"`
	TotalCount  int64           `json:"totalCount"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

type MovieDetailResponse struct {
	MovieResponse
	Reviews []ReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	cast := movie.Cast
	if cast == nil {
		cast = []entity.CastMember{}
	}

	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genres:      movie.Genres,
		ReleaseYear: movie.ReleaseYear,
		Director:    movie.Director,
		Cast:        cast,
		Synopsis:    movie.Synopsis,
		PosterURL:   movie.PosterURL,
		Rating:      movie.Rating,
		ReviewCount: movie.ReviewCount,
		CreatedAt:   movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
