package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"movie-catalog/pkg/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrendingImport_SkipsExistingIDs(t *testing.T) {
	repo := newFakeTrendingRepo()
	source := &fakeTrendingSource{
		enabled: true,
		items: []tmdb.TrendingItem{
			{ID: 1, Title: "Dune", ReleaseDate: "2021-09-15", MediaType: "movie"},
			{ID: 2, Title: "Arrival"},
			{ID: 3, Name: "Severance"},
		},
	}
	svc := NewTrendingService(repo, source, zap.NewNop())

	first, err := svc.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Fetched: 3, Inserted: 2, Skipped: 0, Untitled: 1}, *first)

	second, err := svc.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Fetched: 3, Inserted: 0, Skipped: 2, Untitled: 1}, *second)

	assert.Equal(t, 2, repo.writes)
}

func TestTrendingImport_Defaults(t *testing.T) {
	repo := newFakeTrendingRepo()
	source := &fakeTrendingSource{
		enabled: true,
		items: []tmdb.TrendingItem{
			{ID: 7, Title: strings.Repeat("x", 150), ReleaseDate: "soon"},
		},
	}
	svc := NewTrendingService(repo, source, zap.NewNop())

	_, err := svc.Import(context.Background())
	require.NoError(t, err)

	stored := repo.byExt[7]
	require.NotNil(t, stored)
	assert.Equal(t, "Unknown", stored.MediaType)
	assert.Len(t, stored.Title, 100)
	assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), stored.ReleaseDate)
}

func TestTrendingImport_Disabled(t *testing.T) {
	svc := NewTrendingService(newFakeTrendingRepo(), &fakeTrendingSource{}, zap.NewNop())

	_, err := svc.Import(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, svc.StartImport(context.Background()), ErrUnavailable)
}

func TestTrendingStartImport_OneAtATime(t *testing.T) {
	repo := newFakeTrendingRepo()
	source := &fakeTrendingSource{
		enabled: true,
		items:   []tmdb.TrendingItem{{ID: 1, Title: "Dune"}},
		block:   make(chan struct{}),
	}
	svc := NewTrendingService(repo, source, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.StartImport(ctx))

	// the request context ending must not stop the import
	cancel()
	assert.ErrorIs(t, svc.StartImport(context.Background()), ErrConflict)

	close(source.block)
	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return repo.writes == 1
	}, time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return svc.StartImport(context.Background()) == nil
	}, time.Second, 10*time.Millisecond)
}
