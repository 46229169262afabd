package entity

import "time"

// TrendingMovie is a title imported from the external catalog API,
// unique by ExternalID.
type TrendingMovie struct {
	BaseSimple
	ExternalID  int64     `db:"external_id"`
	Title       string    `db:"title"`
	Overview    string    `db:"overview"`
	ReleaseDate time.Time `db:"release_date"`
	VoteCount   int       `db:"vote_count"`
	VoteAverage float64   `db:"vote_average"`
	MediaType   string    `db:"media_type"`
}
