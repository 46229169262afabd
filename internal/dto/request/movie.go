package request

// MovieRequest creates or fully replaces a movie (POST, PUT).
type MovieRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=100"`
	Description   string   `json:"description"`
	Year          int      `json:"year" validate:"min=0,max=32767"`
	Country       string   `json:"country" validate:"max=30"`
	WorldPremiere string   `json:"world_premiere" validate:"required,datetime=2006-01-02"`
	Budget        int64    `json:"budget" validate:"min=0"`
	FeesInUSA     int64    `json:"fees_in_usa" validate:"min=0"`
	FeesInWorld   int64    `json:"fees_in_world" validate:"min=0"`
	CategoryID    *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	URL           string   `json:"url" validate:"required,max=130,slug"`
	ActorIDs      []string `json:"actors" validate:"dive,uuid"`
	DirectorIDs   []string `json:"directors" validate:"dive,uuid"`
	GenreIDs      []string `json:"genres" validate:"dive,uuid"`
}

// MovieUpdateRequest is a partial update (PATCH); nil fields keep their value.
type MovieUpdateRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string   `json:"description,omitempty"`
	Year          *int      `json:"year,omitempty" validate:"omitempty,min=0,max=32767"`
	Country       *string   `json:"country,omitempty" validate:"omitempty,max=30"`
	WorldPremiere *string   `json:"world_premiere,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Budget        *int64    `json:"budget,omitempty" validate:"omitempty,min=0"`
	FeesInUSA     *int64    `json:"fees_in_usa,omitempty" validate:"omitempty,min=0"`
	FeesInWorld   *int64    `json:"fees_in_world,omitempty" validate:"omitempty,min=0"`
	CategoryID    *string   `json:"category_id,omitempty" validate:"omitempty,uuid"`
	URL           *string   `json:"url,omitempty" validate:"omitempty,max=130,slug"`
	ActorIDs      *[]string `json:"actors,omitempty" validate:"omitempty,dive,uuid"`
	DirectorIDs   *[]string `json:"directors,omitempty" validate:"omitempty,dive,uuid"`
	GenreIDs      *[]string `json:"genres,omitempty" validate:"omitempty,dive,uuid"`
}

// Patch converts a full request into an update where every field is set.
func (m MovieRequest) Patch() *MovieUpdateRequest {
	actors, directors, genres := orEmpty(m.ActorIDs), orEmpty(m.DirectorIDs), orEmpty(m.GenreIDs)
	// an absent category on a full replace clears it
	category := ""
	if m.CategoryID != nil {
		category = *m.CategoryID
	}
	return &MovieUpdateRequest{
		Title:         &m.Title,
		Description:   &m.Description,
		Year:          &m.Year,
		Country:       &m.Country,
		WorldPremiere: &m.WorldPremiere,
		Budget:        &m.Budget,
		FeesInUSA:     &m.FeesInUSA,
		FeesInWorld:   &m.FeesInWorld,
		CategoryID:    &category,
		URL:           &m.URL,
		ActorIDs:      &actors,
		DirectorIDs:   &directors,
		GenreIDs:      &genres,
	}
}

// MovieListQuery carries the list filters from the query string.
type MovieListQuery struct {
	PaginatedRequest
	Genres    []string
	Actors    []string
	Directors []string
	Titles    []string
	YearMin   *int
	YearMax   *int
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
