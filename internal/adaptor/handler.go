package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Actor    *ActorHandler
	Director *DirectorHandler
	Movie    *MovieHandler
	Rating   *RatingHandler
	Review   *ReviewHandler
	Wishlist *WishlistHandler
	Trending *TrendingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Actor:    NewActorHandler(service.Actor, log),
		Director: NewDirectorHandler(service.Director, log),
		Movie:    NewMovieHandler(service.Movie, service.Review, log),
		Rating:   NewRatingHandler(service.Rating, log),
		Review:   NewReviewHandler(service.Review, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
		Trending: NewTrendingHandler(service.Trending, log),
	}
}
