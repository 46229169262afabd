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

type WishlistRepository interface {
	Create(ctx context.Context, wish *entity.UserWishes) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserWishes, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.UserWishes, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	// FindByMovieWithOwner joins every wish of a movie with its owner and
	// the movie title.
	FindByMovieWithOwner(ctx context.Context, movieID uuid.UUID) ([]*entity.WishWithOwner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wishlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWishlistRepository(db database.PgxIface, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "wishlist")),
	}
}

func (r *wishlistRepository) Create(ctx context.Context, wish *entity.UserWishes) error {
	query := `INSERT INTO user_wishes (id, user_id, movie_id, added) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, wish.ID, wish.UserID, wish.MovieID, wish.Added)
	if err != nil {
		r.log.Error("Failed to create wish",
			zap.Error(err),
			zap.String("user_id", wish.UserID.String()),
			zap.String("movie_id", wish.MovieID.String()),
		)
		return fmt.Errorf("create wish: %w", err)
	}

	return nil
}

func (r *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserWishes, error) {
	query := `SELECT id, user_id, movie_id, added FROM user_wishes WHERE id = $1`

	var wish entity.UserWishes
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wish.ID,
		&wish.UserID,
		&wish.MovieID,
		&wish.Added,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find wish by ID",
			zap.Error(err),
			zap.String("wish_id", id.String()),
		)
		return nil, fmt.Errorf("find wish by id: %w", err)
	}

	return &wish, nil
}

func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.UserWishes, error) {
	query := `
		SELECT id, user_id, movie_id, added
		FROM user_wishes
		WHERE user_id = $1
		ORDER BY added DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find wishes by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find wishes by user id: %w", err)
	}
	defer rows.Close()

	var wishes []*entity.UserWishes
	for rows.Next() {
		var wish entity.UserWishes
		if err := rows.Scan(&wish.ID, &wish.UserID, &wish.MovieID, &wish.Added); err != nil {
			r.log.Error("Failed to scan wish", zap.Error(err))
			return nil, fmt.Errorf("scan wish: %w", err)
		}
		wishes = append(wishes, &wish)
	}

	return wishes, rows.Err()
}

func (r *wishlistRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_wishes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count wishes",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count wishes: %w", err)
	}
	return count, nil
}

func (r *wishlistRepository) FindByMovieWithOwner(ctx context.Context, movieID uuid.UUID) ([]*entity.WishWithOwner, error) {
	query := `
		SELECT w.id, w.user_id, w.movie_id, w.added, u.username, u.email, m.title
		FROM user_wishes w
		INNER JOIN users u ON u.id = w.user_id
		INNER JOIN movies m ON m.id = w.movie_id
		WHERE w.movie_id = $1
		ORDER BY w.added, w.id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find wishes by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find wishes by movie id: %w", err)
	}
	defer rows.Close()

	var wishes []*entity.WishWithOwner
	for rows.Next() {
		var wish entity.WishWithOwner
		if err := rows.Scan(
			&wish.ID,
			&wish.UserID,
			&wish.MovieID,
			&wish.Added,
			&wish.Username,
			&wish.Email,
			&wish.MovieTitle,
		); err != nil {
			r.log.Error("Failed to scan wish owner", zap.Error(err))
			return nil, fmt.Errorf("scan wish owner: %w", err)
		}
		wishes = append(wishes, &wish)
	}

	return wishes, rows.Err()
}

func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM user_wishes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete wish",
			zap.Error(err),
			zap.String("wish_id", id.String()),
		)
		return fmt.Errorf("delete wish: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
