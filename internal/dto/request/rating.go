package request

type CreateRatingRequest struct {
	MovieID string `json:"movie_id" validate:"required,uuid"`
	Star    int    `json:"star" validate:"required,min=1"`
}
