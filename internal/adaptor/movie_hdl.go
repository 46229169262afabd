package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	reviews usecase.ReviewService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, reviews usecase.ReviewService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		reviews: reviews,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
// Query params: genres, actors, directors, title (comma separated),
// year_min, year_max, page, per_page
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.MovieListQuery{
		PaginatedRequest: *paginationFromQuery(r),
		Genres:           utils.SplitCSV(query.Get("genres")),
		Actors:           utils.SplitCSV(query.Get("actors")),
		Directors:        utils.SplitCSV(query.Get("directors")),
		Titles:           utils.SplitCSV(query.Get("title")),
		YearMin:          utils.ParseOptionalInt(query.Get("year_min")),
		YearMax:          utils.ParseOptionalInt(query.Get("year_max")),
	}

	result, err := h.service.GetMovies(r.Context(), utils.ClientIP(r), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", result)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), utils.ClientIP(r), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// GetMovieReviews handles GET /api/movies/{id}/reviews
func (h *MovieHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	thread, err := h.reviews.GetMovieThread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", thread)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), utils.ClientIP(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Full replace still runs the create rules before becoming a patch
	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	h.update(w, r, response.ActionUpdate, req.Patch())
}

// PatchMovie handles PATCH /api/movies/{id}
func (h *MovieHandler) PatchMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.update(w, r, response.ActionPartialUpdate, &req)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *MovieHandler) update(w http.ResponseWriter, r *http.Request, action response.Action, req *request.MovieUpdateRequest) {
	movie, err := h.service.UpdateMovie(r.Context(), utils.ClientIP(r), chi.URLParam(r, "id"), action, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}
