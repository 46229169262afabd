package wire

import (
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	config *utils.Config,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/rating-stars", ratingHandler.ListStars)

	// Anonymous writes, throttled per client address
	r.With(middleware.RateLimitByClient(config.RateLimit.RatingsPerMinute, time.Minute)).
		Post("/api/ratings", ratingHandler.Rate)
}
