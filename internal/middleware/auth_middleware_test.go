package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentportal/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	authed := router.Group("", m.JWTAuth())
	authed.GET("/me", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	authed.GET("/staff", m.StaffRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(router, "/me", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "other-secret",
			AccessTokenExp: time.Hour,
			TokenIssuer:    "test",
		})
		token, _, err := other.GenerateToken(1, "alice", false)
		require.NoError(t, err)

		rec := doRequest(router, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(42, "alice", false)
		require.NoError(t, err)

		rec := doRequest(router, "/me", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "42")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenExp: -time.Minute,
			TokenIssuer:    "test",
		})
		token, _, err := expired.GenerateToken(1, "alice", false)
		require.NoError(t, err)

		rec := doRequest(router, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_003")
	})
}

func TestStaffRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("non-staff is forbidden", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(1, "alice", false)
		require.NoError(t, err)

		rec := doRequest(router, "/staff", token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff passes", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(2, "admin", true)
		require.NoError(t, err)

		rec := doRequest(router, "/staff", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated is rejected before the staff check", func(t *testing.T) {
		rec := doRequest(router, "/staff", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
