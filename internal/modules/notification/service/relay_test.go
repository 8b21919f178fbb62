package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/spacemanagement/internal/modules/notification/dto"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRelayPostsPayload(t *testing.T) {
	var got dto.RelayPayload
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, AddNotificationPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		key = r.Header.Get(InternalKeyHeader)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	relay := NewHTTPRelay(srv.URL+"/", "s3cret", srv.Client())
	err := relay.Relay(context.Background(), dto.RelayPayload{AlienID: 7, Message: "hello", NotificationDate: when, Location: "Unknown"})
	require.NoError(t, err)

	assert.Equal(t, uint(7), got.AlienID)
	assert.Equal(t, "hello", got.Message)
	assert.True(t, when.Equal(got.NotificationDate))
	assert.Equal(t, "s3cret", key)
}

func TestHTTPRelayMirrorsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPRelay(srv.URL, "", srv.Client()).Relay(context.Background(), dto.RelayPayload{AlienID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUpstreamRelay)
	assert.Equal(t, http.StatusServiceUnavailable, apperror.MapErrorToStatus(err))
}

func TestHTTPRelayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTPRelay(url, "", nil).Relay(context.Background(), dto.RelayPayload{AlienID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUpstreamRelay)
	assert.Equal(t, http.StatusBadGateway, apperror.MapErrorToStatus(err))
}
