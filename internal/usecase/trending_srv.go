package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/metrics"
	"movie-catalog/pkg/tmdb"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	trendingImportTimeout = 2 * time.Minute
	trendingTitleMaxLen   = 100
	unknownMediaType      = "Unknown"
)

// TrendingSource lists the external catalog's trending titles.
type TrendingSource interface {
	Enabled() bool
	Trending(ctx context.Context) ([]tmdb.TrendingItem, error)
}

// ImportResult counts the outcome of one trending import.
type ImportResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Untitled int `json:"untitled"`
}

type TrendingService interface {
	// Import fetches trending titles and stores the ones whose external id
	// is not stored yet. Existing ids are never rewritten.
	Import(ctx context.Context) (*ImportResult, error)
	// StartImport runs Import in the background, detached from ctx's
	// cancellation. Only one import runs at a time.
	StartImport(ctx context.Context) error
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TrendingMovieResponse], error)
}

type trendingService struct {
	repo    repository.TrendingRepository
	source  TrendingSource
	running atomic.Bool
	log     *zap.Logger
}

func NewTrendingService(repo repository.TrendingRepository, source TrendingSource, log *zap.Logger) TrendingService {
	return &trendingService{
		repo:   repo,
		source: source,
		log:    log.With(zap.String("service", "trending")),
	}
}

func (s *trendingService) Import(ctx context.Context) (*ImportResult, error) {
	if s.source == nil || !s.source.Enabled() {
		return nil, fmt.Errorf("trending import is not configured: %w", ErrUnavailable)
	}

	result := &ImportResult{}
	items, err := s.source.Trending(ctx)
	if err != nil {
		metrics.RecordTrendingRun(0, 0, err)
		return nil, fmt.Errorf("fetch trending: %w", err)
	}
	result.Fetched = len(items)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			result.Untitled++
			continue
		}

		inserted, err := s.repo.InsertIfAbsent(ctx, trendingEntity(item, title, today))
		if err != nil {
			metrics.RecordTrendingRun(result.Inserted, result.Skipped, err)
			return result, fmt.Errorf("store trending title %d: %w", item.ID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}

	metrics.RecordTrendingRun(result.Inserted, result.Skipped, nil)
	s.log.Info("Trending import finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("untitled", result.Untitled),
	)

	return result, nil
}

func (s *trendingService) StartImport(ctx context.Context) error {
	if s.source == nil || !s.source.Enabled() {
		return fmt.Errorf("trending import is not configured: %w", ErrUnavailable)
	}
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("trending import already running: %w", ErrConflict)
	}

	importCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), trendingImportTimeout)
	go func() {
		defer cancel()
		defer s.running.Store(false)

		if _, err := s.Import(importCtx); err != nil {
			s.log.Error("Background trending import failed", zap.Error(err))
		}
	}()

	return nil
}

func (s *trendingService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TrendingMovieResponse], error) {
	movies, err := s.repo.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list trending: %w", err)
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count trending: %w", err)
	}

	data := response.MapSlice(movies, response.TrendingToResponse)
	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func trendingEntity(item tmdb.TrendingItem, title string, today time.Time) *entity.TrendingMovie {
	releaseDate, err := time.Parse("2006-01-02", item.ReleaseDate)
	if err != nil {
		releaseDate = today
	}

	mediaType := item.MediaType
	if mediaType == "" {
		mediaType = unknownMediaType
	}

	return &entity.TrendingMovie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ExternalID:  item.ID,
		Title:       truncateRunes(title, trendingTitleMaxLen),
		Overview:    item.Overview,
		ReleaseDate: releaseDate,
		VoteCount:   item.VoteCount,
		VoteAverage: item.VoteAverage,
		MediaType:   mediaType,
	}
}

func truncateRunes(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	return string([]rune(value)[:max])
}
