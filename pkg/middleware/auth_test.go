package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	repository.SessionRepository
	sessions map[string]*entity.Session
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	return r.sessions[token], nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	token := uuid.NewString()
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{
		token: {UserID: userID},
	}}

	var gotUser uuid.UUID
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.GetUserIDFromContext(r.Context())
		gotToken, _ = utils.GetTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthSession(sessions, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "no token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "not a uuid", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "unknown session", header: "Bearer " + uuid.NewString(), want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, want: http.StatusNoContent},
		{name: "scheme is case insensitive", header: "bearer " + token, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, userID, gotUser)
	assert.Equal(t, token, gotToken)
}

func TestAdmin(t *testing.T) {
	adminID, customerID := uuid.New(), uuid.New()
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		adminID:    {Base: entity.Base{ID: adminID}, Role: entity.RoleAdmin},
		customerID: {Base: entity.Base{ID: customerID}, Role: entity.RoleCustomer},
	}}
	handler := Admin(users, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(ctx context.Context) int {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/reviews/1", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(utils.SetUserContext(context.Background(), adminID)))
	assert.Equal(t, http.StatusForbidden, serve(utils.SetUserContext(context.Background(), customerID)))
	assert.Equal(t, http.StatusForbidden, serve(utils.SetUserContext(context.Background(), uuid.New())))
	assert.Equal(t, http.StatusUnauthorized, serve(context.Background()))
}
