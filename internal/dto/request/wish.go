package request

type CreateWishRequest struct {
	MovieID string `json:"movie_id" validate:"required,uuid"`
}
