package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Browsing the catalog is public.
	r.Get("/movies", movieHandler.List)
	r.Get("/movies/featured", movieHandler.Featured)
	r.Get("/movies/{id}", movieHandler.GetByID)

	// Catalog writes are admin-only.
	r.Route("/admin/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", movieHandler.Create)
		r.Put("/{id}", movieHandler.Update)
	})
}
