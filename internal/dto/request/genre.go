package request

type GenreRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=5000"`
	URL         string `json:"url" validate:"required,max=160,slug"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"max=5000"`
	URL         string `json:"url" validate:"required,max=160,slug"`
}
