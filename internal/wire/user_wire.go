package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the routes of the signed in user: profile and wishlist
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	wishHandler *adaptor.WishlistHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/user/profile", userHandler.GetProfile)

		r.Post("/api/wishes", wishHandler.AddWish)                // POST /api/wishes
		r.Get("/api/user/wishes", wishHandler.GetUserWishes)      // GET /api/user/wishes?page=1&per_page=10
		r.Delete("/api/user/wishes/{id}", wishHandler.RemoveWish) // owner only
	})
}
