package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "parent@example.com", models.RoleParent, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"parent"`)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	authTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	authTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSplitCachedClaims(t *testing.T) {
	userID, role, ok := splitCachedClaims("user-1|parent")
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "parent", role)

	_, _, ok = splitCachedClaims("no-separator")
	assert.False(t, ok)

	_, _, ok = splitCachedClaims("|staff")
	assert.False(t, ok)
}
