package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePeople(
	r chi.Router,
	actorHandler *adaptor.ActorHandler,
	directorHandler *adaptor.DirectorHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/actors?title=Alien,Heat - actors cast in any of those movies
	r.Get("/api/actors", actorHandler.GetActors)
	r.Get("/api/actors/{id}", actorHandler.GetActor)
	r.Get("/api/directors", directorHandler.GetDirectors)
	r.Get("/api/directors/{id}", directorHandler.GetDirector)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/actors", actorHandler.CreateActor)
		r.Put("/api/actors/{id}", actorHandler.UpdateActor)
		r.Delete("/api/actors/{id}", actorHandler.DeleteActor)

		r.Post("/api/directors", directorHandler.CreateDirector)
		r.Put("/api/directors/{id}", directorHandler.UpdateDirector)
		r.Delete("/api/directors/{id}", directorHandler.DeleteDirector)
	})
}
