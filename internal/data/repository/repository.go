package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Category CategoryRepository
	Genre    GenreRepository
	Actor    ActorRepository
	Director DirectorRepository
	Movie    MovieRepository
	Rating   RatingRepository
	Review   ReviewRepository
	Wishlist WishlistRepository
	Trending TrendingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Actor:    NewActorRepository(db, log),
		Director: NewDirectorRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Rating:   NewRatingRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Wishlist: NewWishlistRepository(db, log),
		Trending: NewTrendingRepository(db, log),
	}
}
