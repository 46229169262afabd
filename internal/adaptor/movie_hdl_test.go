package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	usecase.MovieService

	err       error
	clientIP  string
	query     *request.MovieListQuery
	action    response.Action
	update    *request.MovieUpdateRequest
	updatedID string
}

func (s *fakeMovieService) GetMovies(_ context.Context, clientIP string, query *request.MovieListQuery) (*response.PaginatedResponse[response.MovieListResponse], error) {
	s.clientIP, s.query = clientIP, query
	if s.err != nil {
		return nil, s.err
	}
	return response.NewPaginatedResponse[response.MovieListResponse](nil, query.Page, query.Limit(), 0), nil
}

func (s *fakeMovieService) GetMovie(_ context.Context, clientIP, movieID string) (*response.MovieView, error) {
	s.clientIP = clientIP
	if s.err != nil {
		return nil, s.err
	}
	return &response.MovieView{Shape: response.ShapeDetail, Detail: &response.MovieDetailResponse{ID: movieID}}, nil
}

func (s *fakeMovieService) UpdateMovie(_ context.Context, _ string, movieID string, action response.Action, req *request.MovieUpdateRequest) (*response.MovieView, error) {
	s.updatedID, s.action, s.update = movieID, action, req
	if s.err != nil {
		return nil, s.err
	}
	return &response.MovieView{Shape: response.ShapeList, List: &response.MovieListResponse{ID: movieID}}, nil
}

func newMovieRouter(svc usecase.MovieService) http.Handler {
	h := NewMovieHandler(svc, nil, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/{id}", h.GetMovie)
	r.Put("/api/movies/{id}", h.UpdateMovie)
	r.Patch("/api/movies/{id}", h.PatchMovie)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetMovies_ParsesFilters(t *testing.T) {
	svc := &fakeMovieService{}
	req := httptest.NewRequest(http.MethodGet,
		"/api/movies?genres=Drama,Sci-Fi&actors=Al%20Pacino&title=Heat&year_min=1990&year_max=x&page=2&per_page=5", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", svc.clientIP)
	assert.Equal(t, []string{"Drama", "Sci-Fi"}, svc.query.Genres)
	assert.Equal(t, []string{"Al Pacino"}, svc.query.Actors)
	assert.Nil(t, svc.query.Directors)
	assert.Equal(t, []string{"Heat"}, svc.query.Titles)
	require.NotNil(t, svc.query.YearMin)
	assert.Equal(t, 1990, *svc.query.YearMin)
	assert.Nil(t, svc.query.YearMax)
	assert.Equal(t, 2, svc.query.Page)
	assert.Equal(t, 5, svc.query.PerPage)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, []any{}, body["data"].(map[string]any)["data"])
}

func TestMovieHandler_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &usecase.ValidationError{Fields: map[string]string{"year_min": "must not exceed year_max"}}, want: http.StatusBadRequest},
		{name: "invalid input", err: fmt.Errorf("bad: %w", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("movie x: %w", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("create: %w", usecase.ErrConflict), want: http.StatusConflict},
		{name: "forbidden", err: usecase.ErrForbidden, want: http.StatusForbidden},
		{name: "unauthorized", err: usecase.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "unavailable", err: usecase.ErrUnavailable, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMovieRouter(&fakeMovieService{err: tt.err}).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/123", nil))

			assert.Equal(t, tt.want, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, false, body["status"])
		})
	}
}

func TestMovieHandler_ValidationFieldsInBody(t *testing.T) {
	svc := &fakeMovieService{err: &usecase.ValidationError{Fields: map[string]string{"year_min": "must not exceed year_max"}}}
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, map[string]any{"year_min": "must not exceed year_max"}, body["errors"])
}

func TestGetMovie_RendersDetailShape(t *testing.T) {
	rec := httptest.NewRecorder()
	newMovieRouter(&fakeMovieService{}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "abc", data["id"])
	assert.Contains(t, data, "reviews")
	assert.NotContains(t, data, "rating_user")
}

func TestPatchMovie_PartialUpdate(t *testing.T) {
	svc := &fakeMovieService{}
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPatch, "/api/movies/abc", strings.NewReader(`{"title":"Heat (1995)"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", svc.updatedID)
	assert.Equal(t, response.ActionPartialUpdate, svc.action)
	require.NotNil(t, svc.update.Title)
	assert.Equal(t, "Heat (1995)", *svc.update.Title)
	assert.Nil(t, svc.update.Year)
	assert.Nil(t, svc.update.ActorIDs)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Contains(t, data, "rating_user")
}

func TestUpdateMovie_FullReplace(t *testing.T) {
	svc := &fakeMovieService{}
	body := `{"title":"Heat","world_premiere":"1995-12-15","url":"heat","year":1995}`
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPut, "/api/movies/abc", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ActionUpdate, svc.action)
	require.NotNil(t, svc.update.ActorIDs)
	assert.Empty(t, *svc.update.ActorIDs, "a full replace clears omitted links")
	require.NotNil(t, svc.update.CategoryID)
	assert.Equal(t, "", *svc.update.CategoryID)
}

func TestUpdateMovie_RejectsIncompleteReplace(t *testing.T) {
	svc := &fakeMovieService{}
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPut, "/api/movies/abc", strings.NewReader(`{"title":"Heat"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.updatedID)
}

func TestUpdateMovie_MalformedBody(t *testing.T) {
	svc := &fakeMovieService{}
	rec := httptest.NewRecorder()

	newMovieRouter(svc).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPatch, "/api/movies/abc", strings.NewReader(`{"title":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.updatedID)
}
