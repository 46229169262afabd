package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	Update(ctx context.Context, director *entity.Director) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Director, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Director, error)
	CountAll(ctx context.Context) (int64, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `INSERT INTO directors (id, name, age, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		director.ID,
		director.Name,
		director.Age,
		director.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", director.Name),
		)
		return fmt.Errorf("create director: %w", err)
	}

	return nil
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	result, err := r.db.Exec(ctx, `UPDATE directors SET name = $2, age = $3 WHERE id = $1`,
		director.ID,
		director.Name,
		director.Age,
	)
	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.String("director_id", director.ID.String()),
		)
		return fmt.Errorf("update director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return fmt.Errorf("delete director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error) {
	query := `SELECT id, name, age, created_at FROM directors WHERE id = $1`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.Name,
		&director.Age,
		&director.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return nil, fmt.Errorf("find director by id: %w", err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Director, error) {
	query := `
		SELECT id, name, age, created_at
		FROM directors
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all directors", zap.Error(err))
		return nil, fmt.Errorf("find all directors: %w", err)
	}
	return r.scanDirectors(rows)
}

func (r *directorRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Director, error) {
	query := `
		SELECT d.id, d.name, d.age, d.created_at
		FROM directors d
		INNER JOIN movie_directors md ON d.id = md.director_id
		WHERE md.movie_id = $1
		ORDER BY d.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find directors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find directors by movie id: %w", err)
	}
	return r.scanDirectors(rows)
}

func (r *directorRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM directors`).Scan(&count); err != nil {
		r.log.Error("Failed to count directors", zap.Error(err))
		return 0, fmt.Errorf("count directors: %w", err)
	}
	return count, nil
}

func (r *directorRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM directors WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		r.log.Error("Failed to count directors by IDs", zap.Error(err))
		return 0, fmt.Errorf("count directors by ids: %w", err)
	}
	return count, nil
}

func (r *directorRepository) scanDirectors(rows pgx.Rows) ([]*entity.Director, error) {
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		if err := rows.Scan(
			&director.ID,
			&director.Name,
			&director.Age,
			&director.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan director", zap.Error(err))
			return nil, fmt.Errorf("scan director: %w", err)
		}
		directors = append(directors, &director)
	}

	return directors, rows.Err()
}
