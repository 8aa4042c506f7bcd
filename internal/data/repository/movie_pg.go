package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type moviePostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMoviePostgresRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &moviePostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, genres, release_year, director, cast_members,
       synopsis, poster_url, rating, review_count, created_at, updated_at`

func (r *moviePostgresRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genres, release_year, director, cast_members,
		                    synopsis, poster_url, rating, review_count,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genres,
		movie.ReleaseYear,
		movie.Director,
		movie.Cast,
		movie.Synopsis,
		movie.PosterURL,
		movie.Rating,
		movie.ReviewCount,
		movie.CreatedAt,
		movie.UpdatedAt,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

func (r *moviePostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genres,
		&movie.ReleaseYear,
		&movie.Director,
		&movie.Cast,
		&movie.Synopsis,
		&movie.PosterURL,
		&movie.Rating,
		&movie.ReviewCount,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %d: %w", id, err)
	}

	return &movie, nil
}

func (r *moviePostgresRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genres = $3, release_year = $4, director = $5,
		    cast_members = $6, synopsis = $7, poster_url = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genres,
		movie.ReleaseYear,
		movie.Director,
		movie.Cast,
		movie.Synopsis,
		movie.PosterURL,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *moviePostgresRepository) Find(ctx context.Context, query MovieQuery) ([]*entity.Movie, int64, error) {
	where, args := buildMovieFilter(query)

	var total int64
	countQuery := `SELECT COUNT(*) FROM movies` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM movies%s %s LIMIT $%d OFFSET $%d`,
		movieColumns, where, movieOrderBy(query.SortBy), len(args)+1, len(args)+2,
	)
	args = append(args, query.limit(), (query.page()-1)*query.limit())

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, 0, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	movies, err := scanMovies(rows)
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *moviePostgresRepository) Featured(ctx context.Context) ([]*entity.Movie, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM movies ORDER BY rating DESC, id ASC LIMIT %d`,
		movieColumns, featuredCount,
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find featured movies", zap.Error(err))
		return nil, fmt.Errorf("find featured movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *moviePostgresRepository) UpdateRating(ctx context.Context, movieID int64, rating float64, reviewCount int64) error {
	query := `UPDATE movies SET rating = $2, review_count = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, movieID, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update movie rating",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("update rating for movie %d: %w", movieID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func buildMovieFilter(query MovieQuery) (string, []any) {
	var clauses []string
	var args []any

	if query.Search != "" {
		args = append(args, "%"+query.Search+"%")
		n := len(args)
		// Cast matching targets member names only, not roles or jsonb keys.
		clauses = append(clauses, fmt.Sprintf(
			`(title ILIKE $%d OR director ILIKE $%d OR EXISTS `+
				`(SELECT 1 FROM jsonb_array_elements(cast_members) AS c WHERE c->>'name' ILIKE $%d))`, n, n, n))
	}
	if query.Genre != "" {
		args = append(args, "%"+query.Genre+"%")
		clauses = append(clauses, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE $%d)`, len(args)))
	}
	if query.Year != 0 {
		args = append(args, query.Year)
		clauses = append(clauses, fmt.Sprintf(`release_year = $%d`, len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func movieOrderBy(sortBy string) string {
	switch sortBy {
	case SortByYear:
		return `ORDER BY release_year DESC, id ASC`
	case SortByRating:
		return `ORDER BY rating DESC, id ASC`
	default:
		return `ORDER BY LOWER(title) ASC, id ASC`
	}
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genres,
			&movie.ReleaseYear,
			&movie.Director,
			&movie.Cast,
			&movie.Synopsis,
			&movie.PosterURL,
			&movie.Rating,
			&movie.ReviewCount,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}
	return movies, rows.Err()
}
