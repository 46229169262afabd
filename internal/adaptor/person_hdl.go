package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /api/actors?title=a,b
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	titles := utils.SplitCSV(r.URL.Query().Get("title"))

	result, err := h.service.List(r.Context(), titles, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list actors")
		return
	}

	utils.ResponseSuccess(w, "Actors retrieved successfully", result)
}

// GetActor handles GET /api/actors/{id}
func (h *ActorHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	actor, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get actor")
		return
	}

	utils.ResponseSuccess(w, "Actor retrieved successfully", actor)
}

// CreateActor handles POST /api/actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "Actor created successfully", actor)
}

// UpdateActor handles PUT /api/actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "Actor updated successfully", actor)
}

// DeleteActor handles DELETE /api/actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseNoContent(w)
}

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// GetDirectors handles GET /api/directors
func (h *DirectorHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list directors")
		return
	}

	utils.ResponseSuccess(w, "Directors retrieved successfully", result)
}

// GetDirector handles GET /api/directors/{id}
func (h *DirectorHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get director")
		return
	}

	utils.ResponseSuccess(w, "Director retrieved successfully", director)
}

// CreateDirector handles POST /api/directors
func (h *DirectorHandler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	director, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create director")
		return
	}

	utils.ResponseCreated(w, "Director created successfully", director)
}

// UpdateDirector handles PUT /api/directors/{id}
func (h *DirectorHandler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	director, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "Director updated successfully", director)
}

// DeleteDirector handles DELETE /api/directors/{id}
func (h *DirectorHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete director")
		return
	}

	utils.ResponseNoContent(w)
}
