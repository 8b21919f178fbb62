package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": userID, "username": response.GetUsername(c)})
}

func newAuthRouter(tokens *token.Manager) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/me", NewAuthMiddleware(tokens).RequireAuth(), whoAmI)
	return r
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewManager("secret", "auth", "catalog", time.Minute)
	signed, _, err := tokens.Generate(42, "ripley")
	require.NoError(t, err)
	r := newAuthRouter(tokens)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":42,"username":"ripley"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("query fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me?token="+signed, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := token.NewManager("other-secret", "auth", "catalog", time.Minute)
		forged, _, err := other.Generate(42, "ripley")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := token.NewManager("secret", "auth", "elsewhere", time.Minute)
		signed, _, err := other.Generate(42, "ripley")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimiterWithoutRedisIsDisabled(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(response.ContextUserID, uint(1)) })
	r.Use(NewRateLimiter(nil, time.Hour).LimitWrites())
	r.POST("/write", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestIsWrite(t *testing.T) {
	assert.True(t, isWrite(http.MethodPost))
	assert.True(t, isWrite(http.MethodDelete))
	assert.False(t, isWrite(http.MethodGet))
	assert.False(t, isWrite(http.MethodOptions))
	assert.Equal(t, "rate_limit:user:7:write", rateLimitKey(7, writeAction))
}

func TestRequireInternalKey(t *testing.T) {
	newRouter := func(key string) *gin.Engine {
		r := gin.New()
		r.POST("/internal", RequireInternalKey(key), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	w := httptest.NewRecorder()
	newRouter("").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	newRouter("k3y").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/internal", nil)
	req.Header.Set(InternalKeyHeader, "k3y")
	w = httptest.NewRecorder()
	newRouter("k3y").ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
