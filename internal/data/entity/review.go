package entity

import (
	"github.com/google/uuid"
)

// Review is a comment on a movie. A nil ParentID marks a root review.
type Review struct {
	BaseSimple
	Email    string     `db:"email"`
	Name     string     `db:"name"`
	Text     string     `db:"text"`
	ParentID *uuid.UUID `db:"parent_id"`
	MovieID  uuid.UUID  `db:"movie_id"`
}
