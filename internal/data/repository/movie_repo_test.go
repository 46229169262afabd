package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var aggregateColumns = []string{
	"id", "title", "description", "year", "country", "world_premiere",
	"budget", "fees_in_usa", "fees_in_world", "category_id", "url",
	"created_at", "updated_at", "rating_user", "middle_star",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func aggregateRow(rows *pgxmock.Rows, id uuid.UUID, title string, rated bool, middle *float64) *pgxmock.Rows {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var category *uuid.UUID
	return rows.AddRow(
		id, title, "", 1995, "US", now,
		int64(0), int64(0), int64(0), category, "movie-"+title,
		now, now, rated, middle,
	)
}

func TestMovieFilter_Clause(t *testing.T) {
	yearMin, yearMax := 1990, 2000
	filter := MovieFilter{
		Genres:  []string{"Drama"},
		Titles:  []string{"Heat", "Alien"},
		YearMin: &yearMin,
		YearMax: &yearMax,
	}

	where, args := filter.clause([]interface{}{"10.0.0.1"})

	assert.Contains(t, where, "t.name = ANY($2)")
	assert.Contains(t, where, "m.title = ANY($3)")
	assert.Contains(t, where, "m.year >= $4")
	assert.Contains(t, where, "m.year <= $5")
	assert.Equal(t, []interface{}{"10.0.0.1", []string{"Drama"}, []string{"Heat", "Alien"}, 1990, 2000}, args)

	empty, emptyArgs := MovieFilter{}.clause(nil)
	assert.Empty(t, empty)
	assert.Empty(t, emptyArgs)
}

func TestFindAggregates_AnnotatesPerClient(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	rated, unrated := uuid.New(), uuid.New()
	avg := 4.5

	rows := pgxmock.NewRows(aggregateColumns)
	aggregateRow(rows, rated, "Heat", true, &avg)
	aggregateRow(rows, unrated, "Alien", false, nil)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(r.id) FILTER (WHERE r.ip = $1) > 0 AS rating_user")).
		WithArgs("10.0.0.1", []string{"Drama"}, 10, 20).
		WillReturnRows(rows)

	movies, err := repo.FindAggregates(context.Background(), "10.0.0.1",
		MovieFilter{Genres: []string{"Drama"}}, 20, 10)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, rated, movies[0].ID)
	assert.True(t, movies[0].RatingUser)
	require.NotNil(t, movies[0].MiddleStar)
	assert.InDelta(t, 4.5, *movies[0].MiddleStar, 1e-9)

	assert.False(t, movies[1].RatingUser)
	assert.Nil(t, movies[1].MiddleStar, "no ratings means no mean")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAggregateByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE m.id = $2 GROUP BY m.id")).
		WithArgs("10.0.0.1", id).
		WillReturnRows(pgxmock.NewRows(aggregateColumns))

	movie, err := repo.FindAggregateByID(context.Background(), "10.0.0.1", id)
	require.NoError(t, err)
	assert.Nil(t, movie)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMovie_ReplacesOnlyGivenLinks(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	movie := &entity.Movie{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Title: "Heat", URL: "heat"}
	genres := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE movies")).
		WithArgs(movie.ID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	// actors empty: cleared, nothing inserted
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movie_actors WHERE movie_id = $1")).
		WithArgs(movie.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movie_genres WHERE movie_id = $1")).
		WithArgs(movie.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO movie_genres (movie_id, genre_id)")).
		WithArgs(movie.ID, genres).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), movie, entity.MovieLinks{
		ActorIDs: []uuid.UUID{},
		GenreIDs: genres,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMovie_MissingRow(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	movie := &entity.Movie{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE movies")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), movie, entity.MovieLinks{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
