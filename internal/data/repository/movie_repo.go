package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieFilter narrows movie listings. Name lists match any of the given
// values; empty fields do not filter.
type MovieFilter struct {
	Genres    []string
	Actors    []string
	Directors []string
	Titles    []string
	YearMin   *int
	YearMax   *int
}

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie, links entity.MovieLinks) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	// Update replaces the movie row and every non-nil link set in one transaction.
	Update(ctx context.Context, movie *entity.Movie, links entity.MovieLinks) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Annotated listing for one client address
	FindAggregates(ctx context.Context, clientIP string, filter MovieFilter, offset, limit int) ([]*entity.MovieAggregate, error)
	FindAggregateByID(ctx context.Context, clientIP string, id uuid.UUID) (*entity.MovieAggregate, error)
	CountAll(ctx context.Context, filter MovieFilter) (int64, error)
	FindLinks(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID]*entity.MovieLinks, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `m.id, m.title, m.description, m.year, m.country, m.world_premiere,
		       m.budget, m.fees_in_usa, m.fees_in_world, m.category_id, m.url,
		       m.created_at, m.updated_at`

// aggregateSelect annotates each movie with whether $1 rated it and the
// mean star value over all of its ratings, in a single grouped pass.
const aggregateSelect = `
		SELECT ` + movieColumns + `,
		       COUNT(r.id) FILTER (WHERE r.ip = $1) > 0 AS rating_user,
		       AVG(s.value)::float8 AS middle_star
		FROM movies m
		LEFT JOIN ratings r ON r.movie_id = m.id
		LEFT JOIN rating_stars s ON s.id = r.star_id
`

type linkTable struct {
	table  string
	column string
	ids    []uuid.UUID
}

func movieLinkTables(links entity.MovieLinks) []linkTable {
	return []linkTable{
		{table: "movie_actors", column: "actor_id", ids: links.ActorIDs},
		{table: "movie_directors", column: "director_id", ids: links.DirectorIDs},
		{table: "movie_genres", column: "genre_id", ids: links.GenreIDs},
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie, links entity.MovieLinks) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin create movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO movies (id, title, description, year, country, world_premiere,
		                    budget, fees_in_usa, fees_in_world, category_id, url,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Year,
		movie.Country,
		movie.WorldPremiere,
		movie.Budget,
		movie.FeesInUSA,
		movie.FeesInWorld,
		movie.CategoryID,
		movie.URL,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	if err := r.replaceLinks(ctx, tx, movie.ID, links); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit movie create", zap.Error(err))
		return fmt.Errorf("commit create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie, links entity.MovieLinks) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin update movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE movies
		SET title = $2, description = $3, year = $4, country = $5, world_premiere = $6,
		    budget = $7, fees_in_usa = $8, fees_in_world = $9, category_id = $10, url = $11,
		    updated_at = $12
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Year,
		movie.Country,
		movie.WorldPremiere,
		movie.Budget,
		movie.FeesInUSA,
		movie.FeesInWorld,
		movie.CategoryID,
		movie.URL,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := r.replaceLinks(ctx, tx, movie.ID, links); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit movie update", zap.Error(err))
		return fmt.Errorf("commit update movie: %w", err)
	}

	return nil
}

// replaceLinks rewrites each non-nil link set; nil sets are left untouched.
func (r *movieRepository) replaceLinks(ctx context.Context, tx pgx.Tx, movieID uuid.UUID, links entity.MovieLinks) error {
	for _, link := range movieLinkTables(links) {
		if link.ids == nil {
			continue
		}

		if _, err := tx.Exec(ctx, `DELETE FROM `+link.table+` WHERE movie_id = $1`, movieID); err != nil {
			r.log.Error("Failed to clear movie links",
				zap.Error(err),
				zap.String("table", link.table),
				zap.String("movie_id", movieID.String()),
			)
			return fmt.Errorf("clear %s: %w", link.table, err)
		}

		if len(link.ids) == 0 {
			continue
		}

		query := `INSERT INTO ` + link.table + ` (movie_id, ` + link.column + `)
			SELECT $1, x FROM unnest($2::uuid[]) AS x ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, query, movieID, link.ids); err != nil {
			r.log.Error("Failed to insert movie links",
				zap.Error(err),
				zap.String("table", link.table),
				zap.String("movie_id", movieID.String()),
			)
			return fmt.Errorf("insert %s: %w", link.table, err)
		}
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = $1`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(movieScanTargets(&movie)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAggregates(ctx context.Context, clientIP string, filter MovieFilter, offset, limit int) ([]*entity.MovieAggregate, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(aggregateSelect)

	args := []interface{}{clientIP}
	where, args := filter.clause(args)
	queryBuilder.WriteString(where)

	queryBuilder.WriteString(" GROUP BY m.id")
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY m.created_at, m.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movie aggregates",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find movie aggregates: %w", err)
	}
	defer rows.Close()

	var movies []*entity.MovieAggregate
	for rows.Next() {
		var movie entity.MovieAggregate
		if err := rows.Scan(aggregateScanTargets(&movie)...); err != nil {
			r.log.Error("Failed to scan movie aggregate", zap.Error(err))
			return nil, fmt.Errorf("scan movie aggregate: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *movieRepository) FindAggregateByID(ctx context.Context, clientIP string, id uuid.UUID) (*entity.MovieAggregate, error) {
	query := aggregateSelect + ` WHERE m.id = $2 GROUP BY m.id`

	var movie entity.MovieAggregate
	err := r.db.QueryRow(ctx, query, clientIP, id).Scan(aggregateScanTargets(&movie)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie aggregate",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie aggregate: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) CountAll(ctx context.Context, filter MovieFilter) (int64, error) {
	where, args := filter.clause(nil)
	query := `SELECT COUNT(*) FROM movies m` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}

// FindLinks loads the link sets of many movies with one query per table.
func (r *movieRepository) FindLinks(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID]*entity.MovieLinks, error) {
	result := make(map[uuid.UUID]*entity.MovieLinks, len(movieIDs))
	for _, id := range movieIDs {
		result[id] = &entity.MovieLinks{
			ActorIDs:    []uuid.UUID{},
			DirectorIDs: []uuid.UUID{},
			GenreIDs:    []uuid.UUID{},
		}
	}
	if len(movieIDs) == 0 {
		return result, nil
	}

	for _, link := range movieLinkTables(entity.MovieLinks{}) {
		query := `SELECT movie_id, ` + link.column + ` FROM ` + link.table +
			` WHERE movie_id = ANY($1) ORDER BY movie_id, ` + link.column

		rows, err := r.db.Query(ctx, query, movieIDs)
		if err != nil {
			r.log.Error("Failed to find movie links",
				zap.Error(err),
				zap.String("table", link.table),
			)
			return nil, fmt.Errorf("find %s: %w", link.table, err)
		}

		for rows.Next() {
			var movieID, targetID uuid.UUID
			if err := rows.Scan(&movieID, &targetID); err != nil {
				rows.Close()
				r.log.Error("Failed to scan movie link", zap.Error(err))
				return nil, fmt.Errorf("scan %s: %w", link.table, err)
			}

			links, ok := result[movieID]
			if !ok {
				continue
			}
			switch link.table {
			case "movie_actors":
				links.ActorIDs = append(links.ActorIDs, targetID)
			case "movie_directors":
				links.DirectorIDs = append(links.DirectorIDs, targetID)
			case "movie_genres":
				links.GenreIDs = append(links.GenreIDs, targetID)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate %s: %w", link.table, err)
		}
	}

	return result, nil
}

// clause renders the filter as a WHERE clause, numbering placeholders
// after the arguments already in args.
func (f MovieFilter) clause(args []interface{}) (string, []interface{}) {
	var conditions []string

	nameFilter := func(table, column, target string, values []string) {
		if len(values) == 0 {
			return
		}
		args = append(args, values)
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s l INNER JOIN %s t ON t.id = l.%s WHERE l.movie_id = m.id AND t.name = ANY($%d))`,
			table, target, column, len(args),
		))
	}

	nameFilter("movie_genres", "genre_id", "genres", f.Genres)
	nameFilter("movie_actors", "actor_id", "actors", f.Actors)
	nameFilter("movie_directors", "director_id", "directors", f.Directors)

	if len(f.Titles) > 0 {
		args = append(args, f.Titles)
		conditions = append(conditions, fmt.Sprintf("m.title = ANY($%d)", len(args)))
	}
	if f.YearMin != nil {
		args = append(args, *f.YearMin)
		conditions = append(conditions, fmt.Sprintf("m.year >= $%d", len(args)))
	}
	if f.YearMax != nil {
		args = append(args, *f.YearMax)
		conditions = append(conditions, fmt.Sprintf("m.year <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func movieScanTargets(movie *entity.Movie) []interface{} {
	return []interface{}{
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Year,
		&movie.Country,
		&movie.WorldPremiere,
		&movie.Budget,
		&movie.FeesInUSA,
		&movie.FeesInWorld,
		&movie.CategoryID,
		&movie.URL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	}
}

func aggregateScanTargets(movie *entity.MovieAggregate) []interface{} {
	return append(movieScanTargets(&movie.Movie), &movie.RatingUser, &movie.MiddleStar)
}
