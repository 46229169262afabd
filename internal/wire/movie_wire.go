package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - list shape, filtered by genres/actors/directors/title/year range
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - detail shape with the review thread
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// GET /api/movies/{id}/reviews - review thread only
	r.Get("/api/movies/{id}/reviews", movieHandler.GetMovieReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/movies", movieHandler.CreateMovie)
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)  // full replace
		r.Patch("/api/movies/{id}", movieHandler.PatchMovie) // partial update
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
	})
}
