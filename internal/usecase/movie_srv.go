package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationDispatcher hands the wishlist entries of an updated movie to
// background delivery. Dispatch must not wait for delivery.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, movie *entity.Movie, wishes []*entity.WishWithOwner) error
}

type MovieService interface {
	GetMovies(ctx context.Context, clientIP string, query *request.MovieListQuery) (*response.PaginatedResponse[response.MovieListResponse], error)
	GetMovie(ctx context.Context, clientIP, movieID string) (*response.MovieView, error)
	CreateMovie(ctx context.Context, clientIP string, req *request.MovieRequest) (*response.MovieView, error)
	// UpdateMovie applies req and, once committed, notifies every user
	// wishing for the movie.
	UpdateMovie(ctx context.Context, clientIP, movieID string, action response.Action, req *request.MovieUpdateRequest) (*response.MovieView, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo     *repository.Repository
	notifier NotificationDispatcher
	log      *zap.Logger
}

func NewMovieService(repo *repository.Repository, notifier NotificationDispatcher, log *zap.Logger) MovieService {
	return &movieService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, clientIP string, query *request.MovieListQuery) (*response.PaginatedResponse[response.MovieListResponse], error) {
	filter := repository.MovieFilter{
		Genres:    query.Genres,
		Actors:    query.Actors,
		Directors: query.Directors,
		Titles:    query.Titles,
		YearMin:   query.YearMin,
		YearMax:   query.YearMax,
	}
	if filter.YearMin != nil && filter.YearMax != nil && *filter.YearMin > *filter.YearMax {
		return nil, newValidationError("year_min", "must not exceed year_max")
	}

	movies, err := s.repo.Movie.FindAggregates(ctx, clientIP, filter, query.Offset(), query.Limit())
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.ID)
	}
	links, err := s.repo.Movie.FindLinks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load movie links: %w", err)
	}

	data := make([]response.MovieListResponse, 0, len(movies))
	for _, movie := range movies {
		data = append(data, response.MovieToListResponse(movie, links[movie.ID]))
	}

	return response.NewPaginatedResponse(data, query.Page, query.Limit(), total), nil
}

func (s *movieService) GetMovie(ctx context.Context, clientIP, movieID string) (*response.MovieView, error) {
	id, err := parseID("id", movieID)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, response.ActionRetrieve, clientIP, id)
}

func (s *movieService) CreateMovie(ctx context.Context, clientIP string, req *request.MovieRequest) (*response.MovieView, error) {
	// 1. Validate request
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Build entity from a fully populated patch
	now := time.Now()
	movie := &entity.Movie{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	links, err := s.applyPatch(ctx, movie, req.Patch())
	if err != nil {
		return nil, err
	}

	// 3. Persist movie with its links
	if err := s.repo.Movie.Create(ctx, movie, links); err != nil {
		return nil, storeError("create movie", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return s.present(ctx, response.ActionCreate, clientIP, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, clientIP, movieID string, action response.Action, req *request.MovieUpdateRequest) (*response.MovieView, error) {
	// 1. Validate request
	id, err := parseID("id", movieID)
	if err != nil {
		return nil, err
	}
	if err := validationFailed(utils.ValidateStruct(req)); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Load and patch
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", id)
	}

	links, err := s.applyPatch(ctx, movie, req)
	if err != nil {
		return nil, err
	}
	movie.UpdatedAt = time.Now()

	// 3. Commit
	if err := s.repo.Movie.Update(ctx, movie, links); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("movie", id)
		}
		return nil, storeError("update movie", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", id.String()))

	// 4. Notify wishers after commit
	s.notifyWishers(ctx, movie)

	return s.present(ctx, action, clientIP, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := parseID("id", movieID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("movie", id)
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

// ==================== HELPER METHODS ====================

// notifyWishers snapshots the wishlist of movie and dispatches it. Failures
// are logged only; the update itself has already succeeded.
func (s *movieService) notifyWishers(ctx context.Context, movie *entity.Movie) {
	wishes, err := s.repo.Wishlist.FindByMovieWithOwner(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to load wishes for notification",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return
	}
	if len(wishes) == 0 {
		return
	}

	if err := s.notifier.Dispatch(ctx, movie, wishes); err != nil {
		s.log.Error("Failed to dispatch movie notifications",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
			zap.Int("wishes", len(wishes)),
		)
		return
	}

	s.log.Info("Movie notifications dispatched",
		zap.String("movie_id", movie.ID.String()),
		zap.Int("wishes", len(wishes)),
	)
}

// applyPatch copies the set fields of req onto movie and resolves the
// referenced category and link ids. Nil link fields stay nil in the result.
func (s *movieService) applyPatch(ctx context.Context, movie *entity.Movie, req *request.MovieUpdateRequest) (entity.MovieLinks, error) {
	var links entity.MovieLinks

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Country != nil {
		movie.Country = *req.Country
	}
	if req.WorldPremiere != nil {
		premiere, err := time.Parse("2006-01-02", *req.WorldPremiere)
		if err != nil {
			return links, newValidationError("world_premiere", "must be a date in YYYY-MM-DD format")
		}
		movie.WorldPremiere = premiere
	}
	if req.Budget != nil {
		movie.Budget = *req.Budget
	}
	if req.FeesInUSA != nil {
		movie.FeesInUSA = *req.FeesInUSA
	}
	if req.FeesInWorld != nil {
		movie.FeesInWorld = *req.FeesInWorld
	}
	if req.URL != nil {
		movie.URL = *req.URL
	}

	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			movie.CategoryID = nil
		} else {
			categoryID, err := parseID("category_id", *req.CategoryID)
			if err != nil {
				return links, err
			}
			category, err := s.repo.Category.FindByID(ctx, categoryID)
			if err != nil {
				return links, fmt.Errorf("find category: %w", err)
			}
			if category == nil {
				return links, newValidationError("category_id", "category does not exist")
			}
			movie.CategoryID = &categoryID
		}
	}

	var err error
	if req.ActorIDs != nil {
		if links.ActorIDs, err = s.resolveLinks(ctx, "actors", *req.ActorIDs, s.repo.Actor.CountByIDs); err != nil {
			return links, err
		}
	}
	if req.DirectorIDs != nil {
		if links.DirectorIDs, err = s.resolveLinks(ctx, "directors", *req.DirectorIDs, s.repo.Director.CountByIDs); err != nil {
			return links, err
		}
	}
	if req.GenreIDs != nil {
		if links.GenreIDs, err = s.resolveLinks(ctx, "genres", *req.GenreIDs, s.repo.Genre.CountByIDs); err != nil {
			return links, err
		}
	}

	return links, nil
}

// resolveLinks parses and de-duplicates ids and checks that all of them exist.
func (s *movieService) resolveLinks(
	ctx context.Context,
	field string,
	values []string,
	count func(context.Context, []uuid.UUID) (int, error),
) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	seen := make(map[uuid.UUID]bool, len(values))
	for _, value := range values {
		id, err := parseID(field, value)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return ids, nil
	}

	found, err := count(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", field, err)
	}
	if found != len(ids) {
		return nil, newValidationError(field, "contains unknown ids")
	}

	return ids, nil
}

// present renders a movie in the shape selected for action.
func (s *movieService) present(ctx context.Context, action response.Action, clientIP string, id uuid.UUID) (*response.MovieView, error) {
	switch response.ShapeFor(action) {
	case response.ShapeDetail:
		detail, err := s.detail(ctx, id)
		if err != nil {
			return nil, err
		}
		return &response.MovieView{Shape: response.ShapeDetail, Detail: detail}, nil
	default:
		movie, err := s.repo.Movie.FindAggregateByID(ctx, clientIP, id)
		if err != nil {
			return nil, fmt.Errorf("find movie: %w", err)
		}
		if movie == nil {
			return nil, notFound("movie", id)
		}

		links, err := s.repo.Movie.FindLinks(ctx, []uuid.UUID{id})
		if err != nil {
			return nil, fmt.Errorf("load movie links: %w", err)
		}

		item := response.MovieToListResponse(movie, links[id])
		return &response.MovieView{Shape: response.ShapeList, List: &item}, nil
	}
}

func (s *movieService) detail(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", id)
	}

	var rel response.MovieRelations

	if movie.CategoryID != nil {
		if rel.Category, err = s.repo.Category.FindByID(ctx, *movie.CategoryID); err != nil {
			return nil, fmt.Errorf("find category: %w", err)
		}
	}
	if rel.Directors, err = s.repo.Director.FindByMovieID(ctx, id); err != nil {
		return nil, fmt.Errorf("find directors: %w", err)
	}
	if rel.Actors, err = s.repo.Actor.FindByMovieID(ctx, id); err != nil {
		return nil, fmt.Errorf("find actors: %w", err)
	}
	if rel.Genres, err = s.repo.Genre.FindByMovieID(ctx, id); err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	rel.Reviews = BuildReviewThread(reviews)

	detail := response.MovieToDetailResponse(movie, rel)
	return &detail, nil
}
