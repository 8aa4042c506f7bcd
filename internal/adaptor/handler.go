package adaptor

import (
	"movie-review/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Movie     *MovieHandler
	Review    *ReviewHandler
	Watchlist *WatchlistHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Review:    NewReviewHandler(service.Review, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
	}
}
