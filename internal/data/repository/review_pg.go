package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type reviewPostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewPostgresRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewPostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewPostgresRepository) Create(ctx context.Context, review *entity.Review) error {
	// (user_id, movie_id) carries a unique constraint
	query := `
		INSERT INTO reviews (user_id, movie_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)

	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewPostgresRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	return r.findAll(ctx, `WHERE movie_id = $1`, movieID)
}

func (r *reviewPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	return r.findAll(ctx, `WHERE user_id = $1`, userID)
}

func (r *reviewPostgresRepository) findAll(ctx context.Context, where string, arg any) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, comment, created_at
		FROM reviews
	` + where + ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *reviewPostgresRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %d and movie %d: %w", userID, movieID, err)
	}

	return &review, nil
}

func (r *reviewPostgresRepository) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE movie_id = $1`, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err), zap.Int64("movie_id", movieID))
		return 0, fmt.Errorf("count reviews for movie %d: %w", movieID, err)
	}
	return count, nil
}

func (r *reviewPostgresRepository) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE movie_id = $1
	`

	var avg float64
	var count int64
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to get review stats", zap.Error(err), zap.Int64("movie_id", movieID))
		return 0, 0, fmt.Errorf("review stats for movie %d: %w", movieID, err)
	}

	return avg, count, nil
}
