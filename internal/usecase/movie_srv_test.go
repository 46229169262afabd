package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type movieFixture struct {
	svc        MovieService
	movies     *fakeMovieRepo
	wishes     *fakeWishlistRepo
	dispatcher *fakeDispatcher
	movie      *entity.Movie
}

func newMovieFixture() *movieFixture {
	movie := testMovie("heat")
	movies := newFakeMovieRepo(movie)
	wishes := &fakeWishlistRepo{byMovie: map[uuid.UUID][]*entity.WishWithOwner{}}
	dispatcher := &fakeDispatcher{}

	repo := &repository.Repository{Movie: movies, Wishlist: wishes}
	return &movieFixture{
		svc:        NewMovieService(repo, dispatcher, zap.NewNop()),
		movies:     movies,
		wishes:     wishes,
		dispatcher: dispatcher,
		movie:      movie,
	}
}

func wishFor(movie *entity.Movie, email string) *entity.WishWithOwner {
	return &entity.WishWithOwner{
		UserWishes: entity.UserWishes{ID: uuid.New(), UserID: uuid.New(), MovieID: movie.ID},
		Username:   email,
		Email:      email,
		MovieTitle: movie.Title,
	}
}

func ptr[T any](v T) *T { return &v }

func TestUpdateMovie_DispatchesEveryWish(t *testing.T) {
	f := newMovieFixture()
	f.wishes.byMovie[f.movie.ID] = []*entity.WishWithOwner{
		wishFor(f.movie, "a@example.com"),
		wishFor(f.movie, "b@example.com"),
	}

	view, err := f.svc.UpdateMovie(context.Background(), "10.0.0.1", f.movie.ID.String(),
		response.ActionPartialUpdate, &request.MovieUpdateRequest{Title: ptr("Heat (1995)")})
	require.NoError(t, err)

	require.Len(t, f.dispatcher.calls, 1)
	call := f.dispatcher.calls[0]
	assert.Equal(t, "Heat (1995)", call.movie.Title)
	assert.Len(t, call.wishes, 2)

	assert.Equal(t, response.ShapeList, view.Shape)
	require.NotNil(t, view.List)
	assert.Equal(t, "Heat (1995)", view.List.Title)
}

func TestUpdateMovie_DispatchFailureDoesNotFailUpdate(t *testing.T) {
	f := newMovieFixture()
	f.wishes.byMovie[f.movie.ID] = []*entity.WishWithOwner{wishFor(f.movie, "a@example.com")}
	f.dispatcher.err = errors.New("queue closed")

	_, err := f.svc.UpdateMovie(context.Background(), "", f.movie.ID.String(),
		response.ActionPartialUpdate, &request.MovieUpdateRequest{Country: ptr("US")})

	require.NoError(t, err)
	assert.Equal(t, 1, f.movies.updated)
	assert.Len(t, f.dispatcher.calls, 1)
}

func TestUpdateMovie_NoWishesNoDispatch(t *testing.T) {
	f := newMovieFixture()

	_, err := f.svc.UpdateMovie(context.Background(), "", f.movie.ID.String(),
		response.ActionPartialUpdate, &request.MovieUpdateRequest{Year: ptr(1995)})

	require.NoError(t, err)
	assert.Empty(t, f.dispatcher.calls)
}

func TestUpdateMovie_WishLookupFailureIsLoggedOnly(t *testing.T) {
	f := newMovieFixture()
	f.wishes.err = errors.New("connection reset")

	_, err := f.svc.UpdateMovie(context.Background(), "", f.movie.ID.String(),
		response.ActionPartialUpdate, &request.MovieUpdateRequest{Year: ptr(1995)})

	require.NoError(t, err)
	assert.Empty(t, f.dispatcher.calls)
}

func TestUpdateMovie_Errors(t *testing.T) {
	f := newMovieFixture()

	t.Run("unknown movie", func(t *testing.T) {
		_, err := f.svc.UpdateMovie(context.Background(), "", uuid.NewString(),
			response.ActionPartialUpdate, &request.MovieUpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := f.svc.UpdateMovie(context.Background(), "", "42",
			response.ActionPartialUpdate, &request.MovieUpdateRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad slug", func(t *testing.T) {
		_, err := f.svc.UpdateMovie(context.Background(), "", f.movie.ID.String(),
			response.ActionPartialUpdate, &request.MovieUpdateRequest{URL: ptr("no spaces allowed")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "URL")
	})

	assert.Zero(t, f.movies.updated)
	assert.Empty(t, f.dispatcher.calls)
}

func TestGetMovies_RejectsInvertedYearRange(t *testing.T) {
	f := newMovieFixture()

	_, err := f.svc.GetMovies(context.Background(), "", &request.MovieListQuery{
		YearMin: ptr(2000),
		YearMax: ptr(1990),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
