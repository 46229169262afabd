package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTrendingService struct {
	usecase.TrendingService
	startErr error
	started  int
}

func (s *fakeTrendingService) StartImport(context.Context) error {
	s.started++
	return s.startErr
}

func TestTriggerImport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "accepted", want: http.StatusAccepted},
		{name: "already running", err: fmt.Errorf("running: %w", usecase.ErrConflict), want: http.StatusConflict},
		{name: "not configured", err: fmt.Errorf("no key: %w", usecase.ErrUnavailable), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTrendingService{startErr: tt.err}
			h := NewTrendingHandler(svc, zap.NewNop())
			rec := httptest.NewRecorder()

			h.TriggerImport(rec, httptest.NewRequest(http.MethodPost, "/api/admin/trending/import", nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, 1, svc.started)
		})
	}
}
