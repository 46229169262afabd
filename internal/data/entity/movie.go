package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	BaseNoDelete
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Year          int        `db:"year"`
	Country       string     `db:"country"`
	WorldPremiere time.Time  `db:"world_premiere"`
	Budget        int64      `db:"budget"`
	FeesInUSA     int64      `db:"fees_in_usa"`
	FeesInWorld   int64      `db:"fees_in_world"`
	CategoryID    *uuid.UUID `db:"category_id"`
	URL           string     `db:"url"`
}

// MovieLinks holds the many-to-many memberships of a movie.
type MovieLinks struct {
	ActorIDs    []uuid.UUID
	DirectorIDs []uuid.UUID
	GenreIDs    []uuid.UUID
}

// MovieAggregate is a movie annotated for one requesting client.
// MiddleStar is nil when the movie has no ratings.
type MovieAggregate struct {
	Movie
	RatingUser bool     `db:"rating_user"`
	MiddleStar *float64 `db:"middle_star"`
}
