package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// Rate handles POST /api/ratings
// Anonymous; the client is identified by its address.
func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRatingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rating, err := h.service.Rate(r.Context(), utils.ClientIP(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate movie")
		return
	}

	utils.ResponseCreated(w, "Rating saved", rating)
}

// ListStars handles GET /api/rating-stars
func (h *RatingHandler) ListStars(w http.ResponseWriter, r *http.Request) {
	stars, err := h.service.ListStars(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rating stars")
		return
	}

	utils.ResponseSuccess(w, "Rating stars retrieved successfully", stars)
}
