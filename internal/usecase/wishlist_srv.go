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

type WishlistService interface {
	AddWish(ctx context.Context, userID uuid.UUID, req *request.CreateWishRequest) (*response.WishResponse, error)
	GetUserWishes(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.WishResponse], error)
	RemoveWish(ctx context.Context, userID uuid.UUID, wishID string) error
}

type wishlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWishlistService(repo *repository.Repository, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo: repo,
		log:  log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) AddWish(ctx context.Context, userID uuid.UUID, req *request.CreateWishRequest) (*response.WishResponse, error) {
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}

	movieID, err := parseID("movie_id", req.MovieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, newValidationError("movie_id", "movie does not exist")
	}

	wish := &entity.UserWishes{
		ID:      uuid.New(),
		UserID:  userID,
		MovieID: movieID,
		Added:   time.Now(),
	}
	if err := s.repo.Wishlist.Create(ctx, wish); err != nil {
		return nil, storeError("create wish", err)
	}

	s.log.Info("Wish added",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
	)

	resp := response.WishToResponse(wish)
	return &resp, nil
}

func (s *wishlistService) GetUserWishes(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.WishResponse], error) {
	wishes, err := s.repo.Wishlist.FindByUserID(ctx, userID, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}

	total, err := s.repo.Wishlist.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count wishes: %w", err)
	}

	data := response.MapSlice(wishes, response.WishToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *wishlistService) RemoveWish(ctx context.Context, userID uuid.UUID, wishID string) error {
	id, err := parseID("id", wishID)
	if err != nil {
		return err
	}

	wish, err := s.repo.Wishlist.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find wish: %w", err)
	}
	if wish == nil {
		return notFound("wish", id)
	}
	if wish.UserID != userID {
		return fmt.Errorf("wish %s: %w", id, ErrForbidden)
	}

	if err := s.repo.Wishlist.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("wish", id)
		}
		return fmt.Errorf("delete wish: %w", err)
	}

	s.log.Info("Wish removed",
		zap.String("user_id", userID.String()),
		zap.String("wish_id", id.String()),
	)
	return nil
}
