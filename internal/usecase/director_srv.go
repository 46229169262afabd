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

type DirectorService interface {
	Create(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	Update(ctx context.Context, id string, req *request.DirectorRequest) (*response.DirectorResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*response.DirectorResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DirectorResponse], error)
}

type directorService struct {
	repo repository.DirectorRepository
	log  *zap.Logger
}

func NewDirectorService(repo repository.DirectorRepository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) Create(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	director := &entity.Director{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
		Age:        req.Age,
	}

	if err := s.repo.Create(ctx, director); err != nil {
		return nil, storeError("create director", err)
	}

	s.log.Info("Director created", zap.String("director_id", director.ID.String()))

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) Update(ctx context.Context, id string, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	directorID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	director, err := s.repo.FindByID(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, notFound("director", directorID)
	}

	director.Name = req.Name
	director.Age = req.Age

	if err := s.repo.Update(ctx, director); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("director", directorID)
		}
		return nil, storeError("update director", err)
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) Delete(ctx context.Context, id string) error {
	directorID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, directorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("director", directorID)
		}
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.String("director_id", directorID.String()))
	return nil
}

func (s *directorService) GetByID(ctx context.Context, id string) (*response.DirectorResponse, error) {
	directorID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	director, err := s.repo.FindByID(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, notFound("director", directorID)
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DirectorResponse], error) {
	directors, err := s.repo.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count directors: %w", err)
	}

	data := response.MapSlice(directors, response.DirectorToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
