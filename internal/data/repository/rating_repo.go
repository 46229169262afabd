package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	FindStars(ctx context.Context) ([]*entity.RatingStar, error)
	FindStarByValue(ctx context.Context, value int) (*entity.RatingStar, error)
	// Upsert stores the rating keyed by (ip, movie_id) and returns the
	// persisted row, whichever of insert or update happened.
	Upsert(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) FindStars(ctx context.Context) ([]*entity.RatingStar, error) {
	rows, err := r.db.Query(ctx, `SELECT id, value FROM rating_stars ORDER BY value`)
	if err != nil {
		r.log.Error("Failed to find rating stars", zap.Error(err))
		return nil, fmt.Errorf("find rating stars: %w", err)
	}
	defer rows.Close()

	var stars []*entity.RatingStar
	for rows.Next() {
		var star entity.RatingStar
		if err := rows.Scan(&star.ID, &star.Value); err != nil {
			r.log.Error("Failed to scan rating star", zap.Error(err))
			return nil, fmt.Errorf("scan rating star: %w", err)
		}
		stars = append(stars, &star)
	}

	return stars, rows.Err()
}

func (r *ratingRepository) FindStarByValue(ctx context.Context, value int) (*entity.RatingStar, error) {
	var star entity.RatingStar
	err := r.db.QueryRow(ctx, `SELECT id, value FROM rating_stars WHERE value = $1`, value).Scan(
		&star.ID,
		&star.Value,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating star",
			zap.Error(err),
			zap.Int("value", value),
		)
		return nil, fmt.Errorf("find rating star: %w", err)
	}

	return &star, nil
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	query := `
		INSERT INTO ratings (id, ip, star_id, movie_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT ratings_ip_movie_key
		DO UPDATE SET star_id = EXCLUDED.star_id, updated_at = EXCLUDED.updated_at
		RETURNING id, ip, star_id, movie_id, created_at, updated_at
	`

	var stored entity.Rating
	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.IP,
		rating.StarID,
		rating.MovieID,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(
		&stored.ID,
		&stored.IP,
		&stored.StarID,
		&stored.MovieID,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("ip", rating.IP),
			zap.String("movie_id", rating.MovieID.String()),
		)
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	return &stored, nil
}
