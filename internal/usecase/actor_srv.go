package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActorService interface {
	Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	Update(ctx context.Context, id string, req *request.ActorRequest) (*response.ActorResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*response.ActorResponse, error)
	// List pages through actors; titles, when given, keeps only actors
	// cast in a movie with one of those titles.
	List(ctx context.Context, titles []string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error)
}

type actorService struct {
	repo repository.ActorRepository
	log  *zap.Logger
}

func NewActorService(repo repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	actor := &entity.Actor{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, storeError("create actor", err)
	}

	s.log.Info("Actor created", zap.String("actor_id", actor.ID.String()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Update(ctx context.Context, id string, req *request.ActorRequest) (*response.ActorResponse, error) {
	actorID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	actor, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, notFound("actor", actorID)
	}

	actor.Name = req.Name
	actor.Age = req.Age
	actor.Description = req.Description

	if err := s.repo.Update(ctx, actor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("actor", actorID)
		}
		return nil, storeError("update actor", err)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Delete(ctx context.Context, id string) error {
	actorID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, actorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("actor", actorID)
		}
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.String("actor_id", actorID.String()))
	return nil
}

func (s *actorService) GetByID(ctx context.Context, id string) (*response.ActorResponse, error) {
	actorID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	actor, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, notFound("actor", actorID)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) List(ctx context.Context, titles []string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error) {
	actors, err := s.repo.FindAll(ctx, titles, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}

	total, err := s.repo.CountAll(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("count actors: %w", err)
	}

	data := response.MapSlice(actors, response.ActorToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
