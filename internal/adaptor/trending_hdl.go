package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type TrendingHandler struct {
	service usecase.TrendingService
	log     *zap.Logger
}

func NewTrendingHandler(service usecase.TrendingService, log *zap.Logger) *TrendingHandler {
	return &TrendingHandler{
		service: service,
		log:     log.With(zap.String("handler", "trending")),
	}
}

// GetTrending handles GET /api/trending
func (h *TrendingHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list trending")
		return
	}

	utils.ResponseSuccess(w, "Trending movies retrieved successfully", result)
}

// TriggerImport handles POST /api/admin/trending/import
// The import keeps running after the response is written.
func (h *TrendingHandler) TriggerImport(w http.ResponseWriter, r *http.Request) {
	if err := h.service.StartImport(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "start trending import")
		return
	}

	utils.ResponseAccepted(w, "Trending import started")
}
