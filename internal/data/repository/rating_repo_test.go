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

func TestRatingUpsert_ReturnsStoredRow(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())

	existingID := uuid.New()
	movieID, starID := uuid.New(), uuid.New()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	rating := &entity.Rating{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: updated, UpdatedAt: updated},
		IP:           "10.0.0.1",
		StarID:       starID,
		MovieID:      movieID,
	}

	// conflicting insert keeps the existing id and created_at
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT ON CONSTRAINT ratings_ip_movie_key")).
		WithArgs(rating.ID, "10.0.0.1", starID, movieID, updated, updated).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ip", "star_id", "movie_id", "created_at", "updated_at"}).
			AddRow(existingID, "10.0.0.1", starID, movieID, created, updated))

	stored, err := repo.Upsert(context.Background(), rating)
	require.NoError(t, err)
	assert.Equal(t, existingID, stored.ID)
	assert.Equal(t, created, stored.CreatedAt)
	assert.Equal(t, starID, stored.StarID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStarByValue_Missing(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM rating_stars WHERE value = $1")).
		WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "value"}))

	star, err := repo.FindStarByValue(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, star)
	assert.NoError(t, mock.ExpectationsWereMet())
}
