package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/spacemanagement/internal/middleware"
	notifService "anoa.com/spacemanagement/internal/modules/notification/service"
	"anoa.com/spacemanagement/internal/testutil"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authHarness struct {
	t      *testing.T
	server *Server
	tokens *token.Manager
}

func newAuthHarness(t *testing.T, internalKey string) *authHarness {
	t.Helper()

	tokens := newTokens()
	srv := NewAuthServer(AuthOptions{
		DB:             testutil.AuthDB(t),
		Tokens:         tokens,
		InternalAPIKey: internalKey,
	})
	return &authHarness{t: t, server: srv, tokens: tokens}
}

func (h *authHarness) do(method, path, bearer string, body any, headers ...string) *httptest.ResponseRecorder {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(w, req)
	return w
}

type loginResult struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
}

func (h *authHarness) signUp(username string) loginResult {
	h.t.Helper()

	creds := gin.H{"username": username, "password": "s3cret!"}
	w := h.do(http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	w = h.do(http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())

	var res loginResult
	require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(h.t, res.Token)
	return res
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newAuthHarness(t, "")

	ripley := h.signUp("ripley")
	claims, err := h.tokens.Parse(ripley.Token)
	require.NoError(t, err)
	assert.Equal(t, ripley.UserID, claims.UserID)
	assert.Equal(t, "ripley", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	w := h.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "ripley", "password": "another1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "ripley", "password": "wrong-one"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "ab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddNotificationFansOut(t *testing.T) {
	h := newAuthHarness(t, "")
	ripley := h.signUp("ripley")
	hicks := h.signUp("hicks")

	w := h.do(http.MethodPost, notifService.AddNotificationPath, "", gin.H{
		"alienId":          7,
		"message":          "Zorg spotted",
		"notificationDate": "2024-03-01T21:07:09Z",
		"location":         "Unknown",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"recipients":2}`, w.Body.String())

	for _, u := range []loginResult{ripley, hicks} {
		w = h.do(http.MethodGet, fmt.Sprintf("/api/UserNotifications/notifications/%d", u.UserID), u.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []struct {
			ID      uint   `json:"id"`
			AlienID uint   `json:"alienId"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, uint(7), list[0].AlienID)
		assert.Equal(t, "Zorg spotted", list[0].Message)

		path := fmt.Sprintf("/api/UserNotifications/notifications/%d", list[0].ID)
		assert.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, path, u.Token, nil).Code)
		assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, path, u.Token, nil).Code)
	}

	w = h.do(http.MethodGet, "/api/UserNotifications/notifications/999", ripley.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodGet, fmt.Sprintf("/api/UserNotifications/notifications/%d", ripley.UserID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddNotificationChecksInternalKey(t *testing.T) {
	h := newAuthHarness(t, "k3y")
	body := gin.H{"alienId": 7, "message": "Zorg spotted"}

	w := h.do(http.MethodPost, notifService.AddNotificationPath, "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, notifService.AddNotificationPath, "", body, middleware.InternalKeyHeader, "k3y")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStreamWithoutRedisIsUnavailable(t *testing.T) {
	h := newAuthHarness(t, "")
	ripley := h.signUp("ripley")

	w := h.do(http.MethodGet, "/api/UserNotifications/ws?token="+ripley.Token, "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// The catalog relays alien events into a real auth service.
func TestCatalogBroadcastReachesEveryUser(t *testing.T) {
	auth := newAuthHarness(t, "k3y")
	ripley := auth.signUp("ripley")
	hicks := auth.signUp("hicks")

	authSrv := httptest.NewServer(auth.server.Handler())
	t.Cleanup(authSrv.Close)

	signed, _, err := auth.tokens.Generate(ripley.UserID, "ripley")
	require.NoError(t, err)

	catalog := NewCatalogServer(CatalogOptions{
		DB:     testutil.CatalogDB(t),
		Tokens: auth.tokens,
		Relay:  notifService.NewHTTPRelay(authSrv.URL, "k3y", nil),
	})
	c := &catalogHarness{t: t, server: catalog, bearer: "Bearer " + signed}

	w := c.do(http.MethodPost, "/api/aliens", zorg())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, u := range []loginResult{ripley, hicks} {
		w = auth.do(http.MethodGet, fmt.Sprintf("/api/UserNotifications/notifications/%d", u.UserID), u.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "by ripley")
		assert.Contains(t, w.Body.String(), "X: 1, Y: 2, Z: 3")
	}
}
