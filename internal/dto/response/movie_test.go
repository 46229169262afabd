package response

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFor(t *testing.T) {
	tests := []struct {
		action Action
		want   Shape
	}{
		{ActionList, ShapeList},
		{ActionRetrieve, ShapeDetail},
		{ActionCreate, ShapeList},
		{ActionUpdate, ShapeList},
		{ActionPartialUpdate, ShapeList},
		{ActionDestroy, ShapeList},
		{Action(99), ShapeList},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShapeFor(tt.action), "action %d", tt.action)
	}
}

func TestMovieView_MarshalsSelectedShape(t *testing.T) {
	star := 3.5
	list := MovieView{Shape: ShapeList, List: &MovieListResponse{
		ID:         "m1",
		Title:      "Heat",
		Actors:     []string{"a1"},
		RatingUser: true,
		MiddleStar: &star,
	}}

	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, true, flat["rating_user"])
	assert.Equal(t, 3.5, flat["middle_star"])
	assert.Equal(t, []any{"a1"}, flat["actors"])
	assert.NotContains(t, flat, "reviews")

	detail := MovieView{Shape: ShapeDetail, Detail: &MovieDetailResponse{
		ID:      "m1",
		Title:   "Heat",
		Reviews: []*ReviewNode{{ID: "r1", Name: "ann", Text: "great", Children: []*ReviewNode{}}},
	}}

	raw, err = json.Marshal(&detail)
	require.NoError(t, err)

	var nested map[string]any
	require.NoError(t, json.Unmarshal(raw, &nested))
	assert.NotContains(t, nested, "rating_user")
	require.Len(t, nested["reviews"], 1)
	assert.Equal(t, []any{}, nested["reviews"].([]any)[0].(map[string]any)["children"])
}
