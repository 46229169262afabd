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

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	// FindAll lists actors; a non-empty titles narrows to actors cast in a
	// movie with one of those titles.
	FindAll(ctx context.Context, titles []string, offset, limit int) ([]*entity.Actor, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error)
	CountAll(ctx context.Context, titles []string) (int64, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

const actorTitleFilter = `
	($1::text[] IS NULL OR EXISTS (
		SELECT 1 FROM movie_actors ma
		INNER JOIN movies m ON m.id = ma.movie_id
		WHERE ma.actor_id = a.id AND m.title = ANY($1)
	))
`

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, name, age, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.Age,
		actor.Description,
		actor.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("create actor: %w", err)
	}

	return nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `UPDATE actors SET name = $2, age = $3, description = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.Age,
		actor.Description,
	)
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `SELECT id, name, age, description, created_at FROM actors WHERE id = $1`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.Age,
		&actor.Description,
		&actor.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by id: %w", err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context, titles []string, offset, limit int) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.name, a.age, a.description, a.created_at
		FROM actors a
		WHERE ` + actorTitleFilter + `
		ORDER BY a.name, a.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, nullableTexts(titles), limit, offset)
	if err != nil {
		r.log.Error("Failed to find all actors",
			zap.Error(err),
			zap.Strings("titles", titles),
		)
		return nil, fmt.Errorf("find all actors: %w", err)
	}
	return r.scanActors(rows)
}

func (r *actorRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.name, a.age, a.description, a.created_at
		FROM actors a
		INNER JOIN movie_actors ma ON a.id = ma.actor_id
		WHERE ma.movie_id = $1
		ORDER BY a.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find actors by movie id: %w", err)
	}
	return r.scanActors(rows)
}

func (r *actorRepository) CountAll(ctx context.Context, titles []string) (int64, error) {
	query := `SELECT COUNT(*) FROM actors a WHERE ` + actorTitleFilter

	var count int64
	if err := r.db.QueryRow(ctx, query, nullableTexts(titles)).Scan(&count); err != nil {
		r.log.Error("Failed to count actors", zap.Error(err))
		return 0, fmt.Errorf("count actors: %w", err)
	}
	return count, nil
}

func (r *actorRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM actors WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		r.log.Error("Failed to count actors by IDs", zap.Error(err))
		return 0, fmt.Errorf("count actors by ids: %w", err)
	}
	return count, nil
}

func (r *actorRepository) scanActors(rows pgx.Rows) ([]*entity.Actor, error) {
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		if err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.Age,
			&actor.Description,
			&actor.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan actor", zap.Error(err))
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, rows.Err()
}

// nullableTexts maps an empty filter to SQL NULL so "no filter" and
// "filter matching nothing" stay distinct.
func nullableTexts(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}
