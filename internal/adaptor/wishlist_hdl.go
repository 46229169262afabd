package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "wishlist")),
	}
}

// AddWish handles POST /api/wishes
func (h *WishlistHandler) AddWish(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateWishRequest
	if !decodeBody(w, r, &req) {
		return
	}

	wish, err := h.service.AddWish(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add wish")
		return
	}

	utils.ResponseCreated(w, "Movie added to wishlist", wish)
}

// GetUserWishes handles GET /api/user/wishes
func (h *WishlistHandler) GetUserWishes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	result, err := h.service.GetUserWishes(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list wishes")
		return
	}

	utils.ResponseSuccess(w, "Wishlist retrieved successfully", result)
}

// RemoveWish handles DELETE /api/user/wishes/{id}
func (h *WishlistHandler) RemoveWish(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.RemoveWish(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "remove wish")
		return
	}

	utils.ResponseNoContent(w)
}
