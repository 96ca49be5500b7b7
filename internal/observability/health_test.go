package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthReadyHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   map[string]Check
		wantCode int
		wantBody string
	}{
		{name: "No checks", checks: nil, wantCode: http.StatusOK, wantBody: "OK"},
		{name: "All healthy", checks: map[string]Check{"mongo": ok, "postgres": ok}, wantCode: http.StatusOK, wantBody: "OK"},
		{name: "One down", checks: map[string]Check{"mongo": ok, "postgres": down}, wantCode: http.StatusServiceUnavailable, wantBody: `"failed":["postgres"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HealthReadyHandler(tt.checks)(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthLiveHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	HealthLiveHandler(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetLogger_Default(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))
}
