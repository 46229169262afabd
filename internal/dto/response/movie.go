package response

import (
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Action names the operation a movie representation is rendered for.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionPartialUpdate
	ActionDestroy
)

// Shape is the movie representation variant.
type Shape int

const (
	ShapeList Shape = iota
	ShapeDetail
)

// ShapeFor selects the representation for an action. Only retrieve
// renders the nested detail shape.
func ShapeFor(action Action) Shape {
	switch action {
	case ActionRetrieve:
		return ShapeDetail
	case ActionList, ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy:
		return ShapeList
	default:
		return ShapeList
	}
}

// MovieListResponse is the flat shape: relations as ids plus the per-client annotations.
type MovieListResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Year          int      `json:"year"`
	Country       string   `json:"country"`
	Directors     []string `json:"directors"`
	Actors        []string `json:"actors"`
	Genres        []string `json:"genres"`
	WorldPremiere string   `json:"world_premiere"`
	Budget        int64    `json:"budget"`
	FeesInUSA     int64    `json:"fees_in_usa"`
	FeesInWorld   int64    `json:"fees_in_world"`
	Category      *string  `json:"category"`
	RatingUser    bool     `json:"rating_user"`
	MiddleStar    *float64 `json:"middle_star"`
	URL           string   `json:"url"`
}

// MovieDetailResponse nests every relation and the threaded reviews.
type MovieDetailResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Year          int                `json:"year"`
	Country       string             `json:"country"`
	WorldPremiere string             `json:"world_premiere"`
	Budget        int64              `json:"budget"`
	FeesInUSA     int64              `json:"fees_in_usa"`
	FeesInWorld   int64              `json:"fees_in_world"`
	URL           string             `json:"url"`
	Category      *CategoryResponse  `json:"category"`
	Directors     []DirectorResponse `json:"directors"`
	Actors        []ActorResponse    `json:"actors"`
	Genres        []GenreResponse    `json:"genres"`
	Reviews       []*ReviewNode      `json:"reviews"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// MovieView carries exactly one populated shape.
type MovieView struct {
	Shape  Shape
	List   *MovieListResponse
	Detail *MovieDetailResponse
}

func (v MovieView) MarshalJSON() ([]byte, error) {
	if v.Shape == ShapeDetail {
		return json.Marshal(v.Detail)
	}
	return json.Marshal(v.List)
}

// MovieRelations groups the nested rows of a detail view.
type MovieRelations struct {
	Category  *entity.Category
	Directors []*entity.Director
	Actors    []*entity.Actor
	Genres    []*entity.Genre
	Reviews   []*ReviewNode
}

// Helper converters
func MovieToListResponse(movie *entity.MovieAggregate, links *entity.MovieLinks) MovieListResponse {
	resp := MovieListResponse{
		ID:            movie.ID.String(),
		Title:         movie.Title,
		Description:   movie.Description,
		Year:          movie.Year,
		Country:       movie.Country,
		Directors:     []string{},
		Actors:        []string{},
		Genres:        []string{},
		WorldPremiere: movie.WorldPremiere.Format("2006-01-02"),
		Budget:        movie.Budget,
		FeesInUSA:     movie.FeesInUSA,
		FeesInWorld:   movie.FeesInWorld,
		RatingUser:    movie.RatingUser,
		MiddleStar:    movie.MiddleStar,
		URL:           movie.URL,
	}

	if movie.CategoryID != nil {
		category := movie.CategoryID.String()
		resp.Category = &category
	}

	if links != nil {
		resp.Directors = idStrings(links.DirectorIDs)
		resp.Actors = idStrings(links.ActorIDs)
		resp.Genres = idStrings(links.GenreIDs)
	}

	return resp
}

func MovieToDetailResponse(movie *entity.Movie, rel MovieRelations) MovieDetailResponse {
	resp := MovieDetailResponse{
		ID:            movie.ID.String(),
		Title:         movie.Title,
		Description:   movie.Description,
		Year:          movie.Year,
		Country:       movie.Country,
		WorldPremiere: movie.WorldPremiere.Format("2006-01-02"),
		Budget:        movie.Budget,
		FeesInUSA:     movie.FeesInUSA,
		FeesInWorld:   movie.FeesInWorld,
		URL:           movie.URL,
		Directors:     MapSlice(rel.Directors, DirectorToResponse),
		Actors:        MapSlice(rel.Actors, ActorToResponse),
		Genres:        MapSlice(rel.Genres, GenreToResponse),
		Reviews:       rel.Reviews,
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     movie.UpdatedAt,
	}

	if rel.Category != nil {
		category := CategoryToResponse(rel.Category)
		resp.Category = &category
	}
	if resp.Reviews == nil {
		resp.Reviews = []*ReviewNode{}
	}

	return resp
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
