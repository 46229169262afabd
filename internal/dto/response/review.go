package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

// ReviewNode is one review in a threaded view; Children nest with the same shape.
type ReviewNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Text     string        `json:"text"`
	Children []*ReviewNode `json:"children"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	ParentID  *string   `json:"parent_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID.String(),
		MovieID:   review.MovieID.String(),
		Email:     review.Email,
		Name:      review.Name,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
	if review.ParentID != nil {
		parent := review.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}
