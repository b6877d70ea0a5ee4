package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/domain/apperr"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("text is required"), http.StatusBadRequest},
		{"not found", apperr.NotFound("post not found"), http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("user not authorized"), http.StatusUnauthorized},
		{"conflict", apperr.Conflict("already liked"), http.StatusConflict},
		{"persistence", apperr.Persistence("save failed", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := respond.Status(tt.err); got != tt.want {
				t.Errorf("Status: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, apperr.Persistence("save failed", errors.New("connection reset")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Error("internal error detail leaked to client")
	}
}

func TestError_SurfacesDomainMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, apperr.Conflict("already liked"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already liked") {
		t.Errorf("body missing message: %s", rec.Body.String())
	}
}
