package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Reading reviews is public.
	r.Get("/movies/{id}/reviews", reviewHandler.ListByMovie)
	r.Get("/users/{id}/reviews", reviewHandler.ListByUser)

	// Writing one requires a session.
	r.With(middleware.AuthSession(repo.Session, log)).Post("/movies/{id}/reviews", reviewHandler.Create)
}
