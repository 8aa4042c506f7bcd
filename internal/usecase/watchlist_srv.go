package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/response"

	"go.uber.org/zap"
)

var (
	ErrAlreadyInWatchlist = errors.New("movie already in watchlist")
	ErrNotInWatchlist     = errors.New("movie not in watchlist")
)

type WatchlistService interface {
	List(ctx context.Context, userID int64) ([]response.WatchlistItemResponse, error)
	Add(ctx context.Context, userID, movieID int64) (*response.WatchlistItemResponse, error)
	Remove(ctx context.Context, userID, movieID int64) error
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) List(ctx context.Context, userID int64) ([]response.WatchlistItemResponse, error) {
	items, err := s.repo.Watchlist.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list watchlist", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list watchlist for user %d: %w", userID, err)
	}

	out := make([]response.WatchlistItemResponse, len(items))
	for i, item := range items {
		movie, err := s.repo.Movie.FindByID(ctx, item.MovieID)
		if err != nil {
			s.log.Warn("Failed to join watchlist movie",
				zap.Error(err),
				zap.Int64("movie_id", item.MovieID),
			)
		}
		out[i] = response.WatchlistItemToResponse(item, movie)
	}
	return out, nil
}

func (s *watchlistService) Add(ctx context.Context, userID, movieID int64) (*response.WatchlistItemResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie for watchlist", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	item := &entity.WatchlistItem{
		UserID:  userID,
		MovieID: movieID,
		AddedAt: time.Now(),
	}

	if err := s.repo.Watchlist.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyInWatchlist
		}
		s.log.Error("Failed to add to watchlist",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("add to watchlist: %w", err)
	}

	s.log.Info("Movie added to watchlist",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)

	resp := response.WatchlistItemToResponse(item, movie)
	return &resp, nil
}

func (s *watchlistService) Remove(ctx context.Context, userID, movieID int64) error {
	if err := s.repo.Watchlist.Remove(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotInWatchlist
		}
		s.log.Error("Failed to remove from watchlist",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("remove from watchlist: %w", err)
	}

	s.log.Info("Movie removed from watchlist",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)
	return nil
}
