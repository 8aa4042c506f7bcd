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

var (
	ErrMovieNotFound = errors.New("movie not found")
	// ErrInvalidReleaseYear covers the dynamic upper bound the validator
	// tags cannot express.
	ErrInvalidReleaseYear = errors.New("invalid release year")
)

type MovieService interface {
	List(ctx context.Context, query repository.MovieQuery) (*response.MovieListResponse, error)
	GetByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error)
	Featured(ctx context.Context) ([]response.MovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Update(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context, query repository.MovieQuery) (*response.MovieListResponse, error) {
	movies, total, err := s.repo.Movie.Find(ctx, query)
	if err != nil {
		s.log.Error("Failed to list movies",
			zap.Error(err),
			zap.String("search", query.Search),
			zap.Int("page", query.Page),
		)
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Debug("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", query.Page),
	)

	return &response.MovieListResponse{
		Movies:      response.MoviesToResponse(movies),
		TotalCount:  total,
		CurrentPage: query.Page,
		TotalPages:  utils.CalculateTotalPages(total, query.Limit),
	}, nil
}

func (s *movieService) GetByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get reviews for movie %d: %w", movieID, err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		author, err := s.repo.User.FindByID(ctx, review.UserID)
		if err != nil {
			s.log.Warn("Failed to get review author",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
			)
		}
		reviewResponses[i] = response.ReviewToResponse(review, author)
	}

	return &response.MovieDetailResponse{
		MovieResponse: response.MovieToResponse(movie),
		Reviews:       reviewResponses,
	}, nil
}

func (s *movieService) Featured(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.Featured(ctx)
	if err != nil {
		s.log.Error("Failed to get featured movies", zap.Error(err))
		return nil, fmt.Errorf("featured movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if req.ReleaseYear > maxReleaseYear() {
		return nil, ErrInvalidReleaseYear
	}

	now := time.Now()
	movie := &entity.Movie{
		BaseWithUpdate: entity.BaseWithUpdate{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		Cast:        castFromRequest(req.Cast),
		Synopsis:    req.Synopsis,
		PosterURL:   posterOrDefault(req.PosterURL, req.Title),
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Update(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie for update", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Genres != nil {
		movie.Genres = req.Genres
	}
	if req.ReleaseYear != nil {
		if *req.ReleaseYear > maxReleaseYear() {
			return nil, ErrInvalidReleaseYear
		}
		movie.ReleaseYear = *req.ReleaseYear
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Cast != nil {
		movie.Cast = castFromRequest(req.Cast)
	}
	if req.Synopsis != nil {
		movie.Synopsis = req.Synopsis
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("update movie %d: %w", movieID, err)
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func maxReleaseYear() int {
	return time.Now().Year() + 10
}

func castFromRequest(cast []request.CastMemberRequest) []entity.CastMember {
	out := make([]entity.CastMember, len(cast))
	for i, member := range cast {
		out[i] = entity.CastMember{Name: member.Name, Role: member.Role}
	}
	return out
}

func posterOrDefault(posterURL *string, title string) string {
	if posterURL != nil && *posterURL != "" {
		return *posterURL
	}
	return utils.DefaultPosterURL(title)
}
