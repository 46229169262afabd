package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRatingFixture() (RatingService, *fakeRatingRepo, *fakeMovieRepo) {
	movies := newFakeMovieRepo(testMovie("alien"))
	ratings := newFakeRatingRepo()
	repo := &repository.Repository{Movie: movies, Rating: ratings}
	return NewRatingService(repo, zap.NewNop()), ratings, movies
}

func anyMovieID(movies *fakeMovieRepo) uuid.UUID {
	for id := range movies.movies {
		return id
	}
	return uuid.Nil
}

func TestRate_SameClientReplacesStar(t *testing.T) {
	svc, ratings, movies := newRatingFixture()
	movieID := anyMovieID(movies)
	ctx := context.Background()

	first, err := svc.Rate(ctx, "10.0.0.1", &request.CreateRatingRequest{MovieID: movieID.String(), Star: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Star)

	second, err := svc.Rate(ctx, "10.0.0.1", &request.CreateRatingRequest{MovieID: movieID.String(), Star: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, second.Star)
	assert.Equal(t, first.ID, second.ID, "the existing rating row is updated in place")

	require.Len(t, ratings.ratings, 1)
	stored := ratings.ratings[ratingKey{ip: "10.0.0.1", movieID: movieID}]
	require.NotNil(t, stored)

	star, _ := ratings.FindStarByValue(ctx, 4)
	assert.Equal(t, star.ID, stored.StarID)
}

func TestRate_DifferentClientsKeepSeparateRows(t *testing.T) {
	svc, ratings, movies := newRatingFixture()
	movieID := anyMovieID(movies).String()

	_, err := svc.Rate(context.Background(), "10.0.0.1", &request.CreateRatingRequest{MovieID: movieID, Star: 5})
	require.NoError(t, err)
	_, err = svc.Rate(context.Background(), "10.0.0.2", &request.CreateRatingRequest{MovieID: movieID, Star: 1})
	require.NoError(t, err)

	assert.Len(t, ratings.ratings, 2)
}

func TestRate_RejectsUnknownReferences(t *testing.T) {
	svc, ratings, movies := newRatingFixture()

	tests := []struct {
		name  string
		req   request.CreateRatingRequest
		field string
	}{
		{
			name:  "unknown movie",
			req:   request.CreateRatingRequest{MovieID: uuid.NewString(), Star: 3},
			field: "movie_id",
		},
		{
			name:  "unknown star",
			req:   request.CreateRatingRequest{MovieID: anyMovieID(movies).String(), Star: 6},
			field: "star",
		},
		{
			name:  "malformed movie id",
			req:   request.CreateRatingRequest{MovieID: "not-a-uuid", Star: 3},
			field: "MovieID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Rate(context.Background(), "10.0.0.1", &tt.req)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Contains(t, validationErr.Fields, tt.field)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, ratings.ratings)
}

func TestListStars_OrderedByValue(t *testing.T) {
	svc, _, _ := newRatingFixture()

	stars, err := svc.ListStars(context.Background())
	require.NoError(t, err)
	require.Len(t, stars, 5)
	for i, star := range stars {
		assert.Equal(t, i+1, star.Value)
	}
}
