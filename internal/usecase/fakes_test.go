package usecase

import (
	"context"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/tmdb"

	"github.com/google/uuid"
)

// Fakes embed the repository interface; calling a method a test did not
// expect panics on the nil embedded value.

type fakeMovieRepo struct {
	repository.MovieRepository
	movies  map[uuid.UUID]*entity.Movie
	updated int
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	repo := &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
	for _, m := range movies {
		repo.movies[m.ID] = m
	}
	return repo
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (r *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie, _ entity.MovieLinks) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	r.movies[movie.ID] = movie
	r.updated++
	return nil
}

func (r *fakeMovieRepo) FindAggregateByID(_ context.Context, _ string, id uuid.UUID) (*entity.MovieAggregate, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	return &entity.MovieAggregate{Movie: *movie}, nil
}

func (r *fakeMovieRepo) FindLinks(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]*entity.MovieLinks, error) {
	return map[uuid.UUID]*entity.MovieLinks{}, nil
}

type ratingKey struct {
	ip      string
	movieID uuid.UUID
}

type fakeRatingRepo struct {
	repository.RatingRepository
	stars   []*entity.RatingStar
	ratings map[ratingKey]*entity.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	repo := &fakeRatingRepo{ratings: make(map[ratingKey]*entity.Rating)}
	for value := 1; value <= 5; value++ {
		repo.stars = append(repo.stars, &entity.RatingStar{ID: uuid.New(), Value: value})
	}
	return repo
}

func (r *fakeRatingRepo) FindStars(_ context.Context) ([]*entity.RatingStar, error) {
	return r.stars, nil
}

func (r *fakeRatingRepo) FindStarByValue(_ context.Context, value int) (*entity.RatingStar, error) {
	for _, star := range r.stars {
		if star.Value == value {
			return star, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) (*entity.Rating, error) {
	key := ratingKey{ip: rating.IP, movieID: rating.MovieID}
	if existing, ok := r.ratings[key]; ok {
		existing.StarID = rating.StarID
		existing.UpdatedAt = rating.UpdatedAt
		return existing, nil
	}
	stored := *rating
	r.ratings[key] = &stored
	return &stored, nil
}

type fakeWishlistRepo struct {
	repository.WishlistRepository
	byMovie map[uuid.UUID][]*entity.WishWithOwner
	err     error
}

func (r *fakeWishlistRepo) FindByMovieWithOwner(_ context.Context, movieID uuid.UUID) ([]*entity.WishWithOwner, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byMovie[movieID], nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.MovieID == movieID {
			out = append(out, review)
		}
	}
	return out, nil
}

type fakeTrendingRepo struct {
	repository.TrendingRepository
	mu     sync.Mutex
	byExt  map[int64]*entity.TrendingMovie
	writes int
}

func newFakeTrendingRepo() *fakeTrendingRepo {
	return &fakeTrendingRepo{byExt: make(map[int64]*entity.TrendingMovie)}
}

func (r *fakeTrendingRepo) InsertIfAbsent(_ context.Context, movie *entity.TrendingMovie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byExt[movie.ExternalID]; ok {
		return false, nil
	}
	r.byExt[movie.ExternalID] = movie
	r.writes++
	return true, nil
}

type fakeTrendingSource struct {
	enabled bool
	items   []tmdb.TrendingItem
	err     error
	block   chan struct{}
}

func (s *fakeTrendingSource) Enabled() bool { return s.enabled }

func (s *fakeTrendingSource) Trending(ctx context.Context) ([]tmdb.TrendingItem, error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

type dispatchCall struct {
	movie  *entity.Movie
	wishes []*entity.WishWithOwner
}

type fakeDispatcher struct {
	calls []dispatchCall
	err   error
}

func (d *fakeDispatcher) Dispatch(_ context.Context, movie *entity.Movie, wishes []*entity.WishWithOwner) error {
	d.calls = append(d.calls, dispatchCall{movie: movie, wishes: wishes})
	return d.err
}

func testMovie(title string) *entity.Movie {
	return &entity.Movie{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Title:        title,
		URL:          "movie-" + title,
	}
}
