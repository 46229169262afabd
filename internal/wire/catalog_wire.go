package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/categories/{id}", categoryHandler.GetCategory)
	r.Get("/api/genres", genreHandler.GetGenres)
	r.Get("/api/genres/{id}", genreHandler.GetGenre)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/categories", categoryHandler.CreateCategory)
		r.Put("/api/categories/{id}", categoryHandler.UpdateCategory)
		r.Delete("/api/categories/{id}", categoryHandler.DeleteCategory)

		r.Post("/api/genres", genreHandler.CreateGenre)
		r.Put("/api/genres/{id}", genreHandler.UpdateGenre)
		r.Delete("/api/genres/{id}", genreHandler.DeleteGenre)
	})
}
