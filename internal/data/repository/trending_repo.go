package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type TrendingRepository interface {
	// InsertIfAbsent stores the title unless its external id is already
	// present; it reports whether a row was written.
	InsertIfAbsent(ctx context.Context, movie *entity.TrendingMovie) (bool, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.TrendingMovie, error)
	CountAll(ctx context.Context) (int64, error)
}

type trendingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrendingRepository(db database.PgxIface, log *zap.Logger) TrendingRepository {
	return &trendingRepository{
		db:  db,
		log: log.With(zap.String("repository", "trending")),
	}
}

func (r *trendingRepository) InsertIfAbsent(ctx context.Context, movie *entity.TrendingMovie) (bool, error) {
	query := `
		INSERT INTO trending_movies (id, external_id, title, overview, release_date,
		                             vote_count, vote_average, media_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (external_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.ExternalID,
		movie.Title,
		movie.Overview,
		movie.ReleaseDate,
		movie.VoteCount,
		movie.VoteAverage,
		movie.MediaType,
		movie.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert trending movie",
			zap.Error(err),
			zap.Int64("external_id", movie.ExternalID),
		)
		return false, fmt.Errorf("insert trending movie %d: %w", movie.ExternalID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *trendingRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.TrendingMovie, error) {
	query := `
		SELECT id, external_id, title, overview, release_date, vote_count,
		       vote_average::float8, media_type, created_at
		FROM trending_movies
		ORDER BY created_at DESC, external_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find trending movies", zap.Error(err))
		return nil, fmt.Errorf("find trending movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.TrendingMovie
	for rows.Next() {
		var movie entity.TrendingMovie
		if err := rows.Scan(
			&movie.ID,
			&movie.ExternalID,
			&movie.Title,
			&movie.Overview,
			&movie.ReleaseDate,
			&movie.VoteCount,
			&movie.VoteAverage,
			&movie.MediaType,
			&movie.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan trending movie", zap.Error(err))
			return nil, fmt.Errorf("scan trending movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *trendingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trending_movies`).Scan(&count); err != nil {
		r.log.Error("Failed to count trending movies", zap.Error(err))
		return 0, fmt.Errorf("count trending movies: %w", err)
	}
	return count, nil
}
