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

type CategoryService interface {
	Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	Update(ctx context.Context, id string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*response.CategoryResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
}

type categoryService struct {
	repo repository.CategoryRepository
	log  *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	category := &entity.Category{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, storeError("create category", err)
	}

	s.log.Info("Category created", zap.String("category_id", category.ID.String()))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	categoryID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, notFound("category", categoryID)
	}

	category.Name = req.Name
	category.Description = req.Description
	category.URL = req.URL

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("category", categoryID)
		}
		return nil, storeError("update category", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	categoryID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("category", categoryID)
		}
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID.String()))
	return nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*response.CategoryResponse, error) {
	categoryID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, notFound("category", categoryID)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.repo.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	data := response.MapSlice(categories, response.CategoryToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
