package request

type CastMemberRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Role string `json:"role" validate:"required,max=255"`
}

type MovieRequest struct {
	Title  string   `json:"title" validate:"required,min=1,max=255"`
	Genres []string `json:"genres" validate:"required,min=1,dive,oneof=Action Adventure Animation Comedy Crime Documentary Drama Family Fantasy History Horror Music Mystery Romance Sci-Fi Thriller War Western"`
	// Upper bound (current year + 10) is checked in the service.
	ReleaseYear int                 `json:"year" validate:"required,gte=1888"`
	Director    string              `json:"director" validate:"required,max=255"`
	Cast        []CastMemberRequest `json:"cast" validate:"omitempty,dive"`
	Synopsis    *string             `json:"synopsis,omitempty" validate:"omitempty,max=2000"`
	PosterURL   *string             `json:"posterUrl,omitempty"`
}

type MovieUpdateRequest struct {
	Title       *string             `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Genres      []string            `json:"genres,omitempty" validate:"omitempty,min=1,dive,oneof=Action Adventure Animation Comedy Crime Documentary Drama Family Fantasy History Horror Music Mystery Romance Sci-Fi Thriller War Western"`
	ReleaseYear *int                `json:"year,omitempty" validate:"omitempty,gte=1888"`
	Director    *string             `json:"director,omitempty" validate:"omitempty,max=255"`
	Cast        []CastMemberRequest `json:"cast,omitempty" validate:"omitempty,dive"`
	Synopsis    *string             `json:"synopsis,omitempty" validate:"omitempty,max=2000"`
	PosterURL   *string             `json:"posterUrl,omitempty"`
}
