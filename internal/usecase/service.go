package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Actor    ActorService
	Director DirectorService
	Movie    MovieService
	Rating   RatingService
	Review   ReviewService
	Wishlist WishlistService
	Trending TrendingService
}

func NewService(
	repo *repository.Repository,
	notifier NotificationDispatcher,
	trending TrendingSource,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Actor:    NewActorService(repo.Actor, log),
		Director: NewDirectorService(repo.Director, log),
		Movie:    NewMovieService(repo, notifier, log),
		Rating:   NewRatingService(repo, log),
		Review:   NewReviewService(repo, log),
		Wishlist: NewWishlistService(repo, log),
		Trending: NewTrendingService(repo.Trending, trending, log),
	}
}
