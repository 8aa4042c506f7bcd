package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

var ErrAlreadyReviewed = errors.New("user already reviewed this movie")

type ReviewService interface {
	Create(ctx context.Context, userID, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByMovie(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, userID, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie for review", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	review := &entity.Review{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movieID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyReviewed
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.refreshMovieRating(ctx, movieID); err != nil {
		s.log.Error("Failed to refresh movie rating", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("refresh rating for movie %d: %w", movieID, err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", req.Rating),
	)

	author, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to get review author", zap.Error(err), zap.Int64("user_id", userID))
	}

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie for reviews", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to list movie reviews", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("list reviews for movie %d: %w", movieID, err)
	}

	return s.joinAuthors(ctx, reviews), nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list user reviews", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list reviews for user %d: %w", userID, err)
	}

	return s.joinAuthors(ctx, reviews), nil
}

// refreshMovieRating recomputes the movie's aggregate from its reviews and
// writes it back. The mean is rounded to one decimal, half away from zero.
func (s *reviewService) refreshMovieRating(ctx context.Context, movieID int64) error {
	mean, count, err := s.repo.Review.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		return err
	}

	return s.repo.Movie.UpdateRating(ctx, movieID, utils.RoundHalfUp(mean), count)
}

func (s *reviewService) joinAuthors(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		author, err := s.repo.User.FindByID(ctx, review.UserID)
		if err != nil {
			s.log.Warn("Failed to get review author",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
			)
		}
		out[i] = response.ReviewToResponse(review, author)
	}
	return out
}
