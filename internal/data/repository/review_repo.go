package repository

import (
	"context"
	"sync"

	"movie-review/internal/data/entity"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Create assigns the next id and stores the review. Returns
	// ErrAlreadyExists when the (user, movie) pair already has a review; the
	// check and the insert are atomic.
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error)
	CountByMovieID(ctx context.Context, movieID int64) (int64, error)

	// GetMovieReviewStats scans the reviews for the movie and returns the raw
	// (unrounded) mean rating and the review count, (0, 0) when none exist.
	GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error)
}

type reviewMemoryRepository struct {
	mu      sync.RWMutex
	reviews []entity.Review
	nextID  int64
	log     *zap.Logger
}

func NewReviewMemoryRepository(log *zap.Logger) ReviewRepository {
	return &reviewMemoryRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "review")),
	}
}

func (r *reviewMemoryRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].UserID == review.UserID && r.reviews[i].MovieID == review.MovieID {
			return ErrAlreadyExists
		}
	}

	review.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, *review)

	return nil
}

func (r *reviewMemoryRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Review
	for i := range r.reviews {
		if r.reviews[i].MovieID == movieID {
			rv := r.reviews[i]
			out = append(out, &rv)
		}
	}
	return out, nil
}

func (r *reviewMemoryRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Review
	for i := range r.reviews {
		if r.reviews[i].UserID == userID {
			rv := r.reviews[i]
			out = append(out, &rv)
		}
	}
	return out, nil
}

func (r *reviewMemoryRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reviews {
		if r.reviews[i].UserID == userID && r.reviews[i].MovieID == movieID {
			rv := r.reviews[i]
			return &rv, nil
		}
	}
	return nil, nil
}

func (r *reviewMemoryRepository) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.reviews {
		if r.reviews[i].MovieID == movieID {
			count++
		}
	}
	return count, nil
}

func (r *reviewMemoryRepository) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum, count int64
	for i := range r.reviews {
		if r.reviews[i].MovieID == movieID {
			sum += int64(r.reviews[i].Rating)
			count++
		}
	}

	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
