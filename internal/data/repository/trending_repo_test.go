package repository

import (
	"context"
	"errors"
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

func TestTrendingInsertIfAbsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new external id", affected: 1, want: true},
		{name: "existing external id", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewTrendingRepository(mock, zap.NewNop())

			movie := &entity.TrendingMovie{
				BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
				ExternalID:  550,
				Title:       "Fight Club",
				ReleaseDate: time.Date(1999, 10, 15, 0, 0, 0, 0, time.UTC),
				MediaType:   "movie",
			}

			mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (external_id) DO NOTHING")).
				WithArgs(movie.ID, int64(550), "Fight Club", "", movie.ReleaseDate, 0, 0.0, "movie", movie.CreatedAt).
				WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))

			inserted, err := repo.InsertIfAbsent(context.Background(), movie)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTrendingInsertIfAbsent_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewTrendingRepository(mock, zap.NewNop())
	boom := errors.New("connection refused")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trending_movies")).WillReturnError(boom)

	_, err := repo.InsertIfAbsent(context.Background(), &entity.TrendingMovie{ExternalID: 1})
	assert.ErrorIs(t, err, boom)
}
