package entity

// Genres is the fixed set of allowed genre tags.
var Genres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime",
	"Documentary", "Drama", "Family", "Fantasy", "History",
	"Horror", "Music", "Mystery", "Romance", "Sci-Fi",
	"Thriller", "War", "Western",
}

type CastMember struct {
	Name string `json:"name" db:"name"`
	Role string `json:"role" db:"role"`
}

type Movie struct {
	BaseWithUpdate
	Title       string       `db:"title"`
	Genres      []string     `db:"genres"`
	ReleaseYear int          `db:"release_year"`
	Director    string       `db:"director"`
	Cast        []CastMember `db:"cast_members"`
	Synopsis    *string      `db:"synopsis"`
	PosterURL   string       `db:"poster_url"`

	// Derived from reviews, recomputed on the write path only.
	Rating      float64 `db:"rating"`
	ReviewCount int64   `db:"review_count"`
}
