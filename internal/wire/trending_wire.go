package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrending(
	r chi.Router,
	trendingHandler *adaptor.TrendingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/trending", trendingHandler.GetTrending)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/trending", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Admin(repo.User, log))          // Must be admin

		r.Post("/import", trendingHandler.TriggerImport) // POST /api/admin/trending/import
	})
}
