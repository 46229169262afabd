package response

import "movie-catalog/internal/data/entity"

type WishResponse struct {
	ID      string `json:"id"`
	MovieID string `json:"movie_id"`
	UserID  string `json:"user_id"`
	Added   string `json:"added"`
}

func WishToResponse(wish *entity.UserWishes) WishResponse {
	return WishResponse{
		ID:      wish.ID.String(),
		MovieID: wish.MovieID.String(),
		UserID:  wish.UserID.String(),
		Added:   wish.Added.Format("2006-01-02"),
	}
}
