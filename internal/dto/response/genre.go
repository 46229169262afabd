package response

import "movie-catalog/internal/data/entity"

type GenreResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type ActorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

type DirectorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:          genre.ID.String(),
		Name:        genre.Name,
		Description: genre.Description,
		URL:         genre.URL,
	}
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		URL:         category.URL,
	}
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:          actor.ID.String(),
		Name:        actor.Name,
		Age:         actor.Age,
		Description: actor.Description,
	}
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		ID:   director.ID.String(),
		Name: director.Name,
		Age:  director.Age,
	}
}

// MapSlice converts each element with fn.
func MapSlice[E any, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
