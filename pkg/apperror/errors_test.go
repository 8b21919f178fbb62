package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("planet 4: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"default image", ErrDefaultImageNotFound, http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusConflict},
		{"rate limit", ErrRateLimitExceeded, http.StatusTooManyRequests},
		{"relay without status", ErrUpstreamRelay, http.StatusBadGateway},
		{"relay mirrors upstream status", Upstream(http.StatusInternalServerError), http.StatusInternalServerError},
		{"relay mirrors 503", fmt.Errorf("alien 3: %w", Upstream(http.StatusServiceUnavailable)), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatus(tt.err))
		})
	}
}

func TestUpstreamUnwrapsToRelaySentinel(t *testing.T) {
	err := Upstream(http.StatusInternalServerError)

	assert.ErrorIs(t, err, ErrUpstreamRelay)
	assert.Equal(t, ErrUpstreamRelay.Error(), err.Error())
}
