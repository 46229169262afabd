package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserWishes struct {
	ID      uuid.UUID `db:"id"`
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Added   time.Time `db:"added"`
}

// WishWithOwner is a wishlist row joined with its user and movie title,
// the shape needed for notification snapshots.
type WishWithOwner struct {
	UserWishes
	Username   string `db:"username"`
	Email      string `db:"email"`
	MovieTitle string `db:"movie_title"`
}
