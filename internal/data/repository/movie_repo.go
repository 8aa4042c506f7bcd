package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"movie-review/internal/data/entity"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByTitle  = "title"
	SortByYear   = "year"
	SortByRating = "rating"

	DefaultPage  = 1
	DefaultLimit = 10

	featuredCount = 6
)

// MovieQuery is the combined filter/sort/page criteria of a listing request.
// Filter axes compose with AND semantics; Search matches with OR across
// title, director and cast names.
type MovieQuery struct {
	Search string
	Genre  string
	Year   int
	SortBy string
	Page   int
	Limit  int
}

func (q MovieQuery) page() int {
	if q.Page < 1 {
		return DefaultPage
	}
	return q.Page
}

func (q MovieQuery) limit() int {
	if q.Limit < 1 {
		return DefaultLimit
	}
	return q.Limit
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error

	// Find filters the full catalog, sorts the filtered set, then slices the
	// requested page window. The returned total is the filtered-set size
	// before pagination.
	Find(ctx context.Context, query MovieQuery) ([]*entity.Movie, int64, error)

	// Featured returns the highest-rated movies (at most 6), ties broken by
	// insertion order.
	Featured(ctx context.Context) ([]*entity.Movie, error)

	// UpdateRating writes the derived aggregate back onto the movie record.
	UpdateRating(ctx context.Context, movieID int64, rating float64, reviewCount int64) error
}

type movieMemoryRepository struct {
	mu     sync.RWMutex
	movies []entity.Movie
	nextID int64
	log    *zap.Logger
}

func NewMovieMemoryRepository(log *zap.Logger) MovieRepository {
	return &movieMemoryRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieMemoryRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = r.nextID
	r.nextID++
	r.movies = append(r.movies, *movie)

	return nil
}

func (r *movieMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.movies {
		if r.movies[i].ID == id {
			m := r.movies[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *movieMemoryRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movies {
		if r.movies[i].ID == movie.ID {
			r.movies[i] = *movie
			return nil
		}
	}
	return ErrNotFound
}

func (r *movieMemoryRepository) Find(ctx context.Context, query MovieQuery) ([]*entity.Movie, int64, error) {
	r.mu.RLock()

	// Filter first; the slice is already in insertion order.
	filtered := make([]entity.Movie, 0, len(r.movies))
	for i := range r.movies {
		if matchesQuery(&r.movies[i], query) {
			filtered = append(filtered, r.movies[i])
		}
	}
	r.mu.RUnlock()

	sortMovies(filtered, query.SortBy)

	total := int64(len(filtered))
	page, limit := query.page(), query.limit()

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]*entity.Movie, 0, end-start)
	for i := start; i < end; i++ {
		m := filtered[i]
		out = append(out, &m)
	}

	return out, total, nil
}

func (r *movieMemoryRepository) Featured(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	featured := make([]entity.Movie, len(r.movies))
	copy(featured, r.movies)
	r.mu.RUnlock()

	// Stable sort keeps insertion order for equal ratings.
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Rating > featured[j].Rating
	})

	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}

	out := make([]*entity.Movie, 0, len(featured))
	for i := range featured {
		m := featured[i]
		out = append(out, &m)
	}
	return out, nil
}

func (r *movieMemoryRepository) UpdateRating(ctx context.Context, movieID int64, rating float64, reviewCount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movies {
		if r.movies[i].ID == movieID {
			r.movies[i].Rating = rating
			r.movies[i].ReviewCount = reviewCount
			return nil
		}
	}
	return ErrNotFound
}

func matchesQuery(movie *entity.Movie, query MovieQuery) bool {
	if query.Search != "" && !matchesSearch(movie, query.Search) {
		return false
	}
	if query.Genre != "" && !matchesGenre(movie, query.Genre) {
		return false
	}
	if query.Year != 0 && movie.ReleaseYear != query.Year {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the title,
// the director, or any cast member name.
func matchesSearch(movie *entity.Movie, search string) bool {
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(movie.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Director), needle) {
		return true
	}
	for _, member := range movie.Cast {
		if strings.Contains(strings.ToLower(member.Name), needle) {
			return true
		}
	}
	return false
}

func matchesGenre(movie *entity.Movie, genre string) bool {
	needle := strings.ToLower(genre)
	for _, g := range movie.Genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}

// sortMovies orders the filtered set in place. Title sorts ascending with
// locale-aware collation; year and rating sort descending. Unknown sort keys
// fall back to title. Stable sorts keep insertion order for ties.
func sortMovies(movies []entity.Movie, sortBy string) {
	switch sortBy {
	case SortByYear:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].ReleaseYear > movies[j].ReleaseYear
		})
	case SortByRating:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].Rating > movies[j].Rating
		})
	default:
		// collate.Collator is not safe for concurrent use
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(movies, func(i, j int) bool {
			return c.CompareString(movies[i].Title, movies[j].Title) < 0
		})
	}
}
