package usecase

import (
	"context"
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

type RatingService interface {
	// Rate records the star a client address gives a movie. A repeated
	// call for the same address and movie replaces the earlier star.
	Rate(ctx context.Context, clientIP string, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	ListStars(ctx context.Context) ([]response.RatingStarResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) Rate(ctx context.Context, clientIP string, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	// 1. Validate request
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		return nil, err
	}
	if clientIP == "" {
		return nil, newValidationError("ip", "client address is unknown")
	}

	movieID, err := parseID("movie_id", req.MovieID)
	if err != nil {
		return nil, err
	}

	// 2. Resolve movie and star
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, newValidationError("movie_id", "movie does not exist")
	}

	star, err := s.repo.Rating.FindStarByValue(ctx, req.Star)
	if err != nil {
		return nil, fmt.Errorf("find rating star: %w", err)
	}
	if star == nil {
		return nil, newValidationError("star", "rating star does not exist")
	}

	// 3. Upsert on (ip, movie)
	now := time.Now()
	rating, err := s.repo.Rating.Upsert(ctx, &entity.Rating{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		IP:      clientIP,
		StarID:  star.ID,
		MovieID: movieID,
	})
	if err != nil {
		return nil, storeError("upsert rating", err)
	}

	s.log.Info("Movie rated",
		zap.String("movie_id", movieID.String()),
		zap.String("ip", clientIP),
		zap.Int("star", star.Value),
	)

	resp := response.RatingToResponse(rating, star)
	return &resp, nil
}

func (s *ratingService) ListStars(ctx context.Context) ([]response.RatingStarResponse, error) {
	stars, err := s.repo.Rating.FindStars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rating stars: %w", err)
	}
	return response.MapSlice(stars, response.RatingStarToResponse), nil
}
