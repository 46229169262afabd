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

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	// GetMovieThread returns the threaded reviews of a movie.
	GetMovieThread(ctx context.Context, movieID string) ([]*response.ReviewNode, error)
	// DeleteReview removes a review; its replies become roots.
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	movieID, err := parseID("movie_id", req.MovieID)
	if err != nil {
		return nil, err
	}

	// Check if movie exists
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, newValidationError("movie_id", "movie does not exist")
	}

	// A reply must stay inside the thread of the same movie
	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := parseID("parent_id", *req.ParentID)
		if err != nil {
			return nil, err
		}

		parent, err := s.repo.Review.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find parent review: %w", err)
		}
		if parent == nil {
			return nil, newValidationError("parent_id", "review does not exist")
		}
		if parent.MovieID != movieID {
			return nil, newValidationError("parent_id", "review belongs to another movie")
		}
		parentID = &id
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:    req.Email,
		Name:     req.Name,
		Text:     req.Text,
		ParentID: parentID,
		MovieID:  movieID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, storeError("create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID.String()),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetMovieThread(ctx context.Context, movieID string) ([]*response.ReviewNode, error) {
	id, err := parseID("movie_id", movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", id)
	}

	return s.thread(ctx, id)
}

func (s *reviewService) thread(ctx context.Context, movieID uuid.UUID) ([]*response.ReviewNode, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	return BuildReviewThread(reviews), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := parseID("id", reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("review", id)
		}
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
