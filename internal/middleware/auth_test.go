package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockbook/internal/middleware"
	"stockbook/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, secret, role string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  uuid.New().String(),
		"username": "testuser",
		"role":     role,
		"exp":      time.Now().Add(dur).Unix(),
		"iat":      time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.JWTAuth(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/write", middleware.RequireRole(model.AdminOrAbove...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/users", middleware.RequireRole(model.SuperAdminOnly...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	r.ServeHTTP(w, req)
	return w
}

// ── Token validation matrix ──────────────────────────────────────────────────

func TestJWTAuth_MissingToken(t *testing.T) {
	w := doGet(testRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	tok := signToken(t, testSecret, model.RoleViewer, time.Hour)
	// Missing the "Bearer " prefix
	w := doGet(testRouter(), "/protected", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "malformed authorization header")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tok := signToken(t, testSecret, model.RoleViewer, -time.Second)
	w := doGet(testRouter(), "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestJWTAuth_WrongKey(t *testing.T) {
	tok := signToken(t, "some_other_secret_entirely_here!!", model.RoleViewer, time.Hour)
	w := doGet(testRouter(), "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_Garbage(t *testing.T) {
	w := doGet(testRouter(), "/protected", "Bearer this.is.garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok := signToken(t, testSecret, model.RoleViewer, time.Hour)
	w := doGet(testRouter(), "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.RoleViewer)
}

// ── Role gate matrix ─────────────────────────────────────────────────────────

func TestRequireRole_Matrix(t *testing.T) {
	r := testRouter()
	cases := []struct {
		role string
		path string
		want int
	}{
		{model.RoleViewer, "/write", http.StatusForbidden},
		{model.RoleAdmin, "/write", http.StatusOK},
		{model.RoleSuperAdmin, "/write", http.StatusOK},
		{model.RoleViewer, "/users", http.StatusForbidden},
		{model.RoleAdmin, "/users", http.StatusForbidden},
		{model.RoleSuperAdmin, "/users", http.StatusOK},
	}
	for _, tc := range cases {
		tok := signToken(t, testSecret, tc.role, time.Hour)
		w := doGet(r, tc.path, "Bearer "+tok)
		assert.Equal(t, tc.want, w.Code, "role %s on %s", tc.role, tc.path)
	}
}

func TestRequireRole_UnknownRole(t *testing.T) {
	tok := signToken(t, testSecret, "intruder", time.Hour)
	w := doGet(testRouter(), "/write", "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}
