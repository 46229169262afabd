package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type RatingStarResponse struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

type RatingResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	Star      int       `json:"star"`
	UpdatedAt time.Time `json:"updated_at"`
}

func RatingStarToResponse(star *entity.RatingStar) RatingStarResponse {
	return RatingStarResponse{
		ID:    star.ID.String(),
		Value: star.Value,
	}
}

func RatingToResponse(rating *entity.Rating, star *entity.RatingStar) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		MovieID:   rating.MovieID.String(),
		Star:      star.Value,
		UpdatedAt: rating.UpdatedAt,
	}
}
