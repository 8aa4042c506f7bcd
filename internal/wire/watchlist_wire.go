package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWatchlist(
	r chi.Router,
	watchlistHandler *adaptor.WatchlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// The whole watchlist surface is private to its owner.
	r.Route("/users/{id}/watchlist", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", watchlistHandler.List)
		r.Post("/", watchlistHandler.Add)
		r.Delete("/{movieId}", watchlistHandler.Remove)
	})
}
