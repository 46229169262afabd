package entity

import "github.com/google/uuid"

// RatingStar is shared reference data, ordered by Value.
type RatingStar struct {
	ID    uuid.UUID `db:"id"`
	Value int       `db:"value"`
}

// Rating maps one client address and one movie to a single star.
type Rating struct {
	BaseNoDelete
	IP      string    `db:"ip"`
	StarID  uuid.UUID `db:"star_id"`
	MovieID uuid.UUID `db:"movie_id"`
}
