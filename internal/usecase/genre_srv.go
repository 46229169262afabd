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

type GenreService interface {
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	Update(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*response.GenreResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
}

type genreService struct {
	repo repository.GenreRepository
	log  *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	genre := &entity.Genre{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, storeError("create genre", err)
	}

	s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Update(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error) {
	genreID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	genre, err := s.repo.FindByID(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, notFound("genre", genreID)
	}

	genre.Name = req.Name
	genre.Description = req.Description
	genre.URL = req.URL

	if err := s.repo.Update(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("genre", genreID)
		}
		return nil, storeError("update genre", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, id string) error {
	genreID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, genreID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("genre", genreID)
		}
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("genre_id", genreID.String()))
	return nil
}

func (s *genreService) GetByID(ctx context.Context, id string) (*response.GenreResponse, error) {
	genreID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	genre, err := s.repo.FindByID(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, notFound("genre", genreID)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	data := response.MapSlice(genres, response.GenreToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
