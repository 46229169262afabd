package response

import "movie-catalog/internal/data/entity"

type TrendingMovieResponse struct {
	ID          string  `json:"id"`
	ExternalID  int64   `json:"external_id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
	MediaType   string  `json:"media_type"`
}

func TrendingToResponse(movie *entity.TrendingMovie) TrendingMovieResponse {
	return TrendingMovieResponse{
		ID:          movie.ID.String(),
		ExternalID:  movie.ExternalID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		VoteCount:   movie.VoteCount,
		VoteAverage: movie.VoteAverage,
		MediaType:   movie.MediaType,
	}
}
