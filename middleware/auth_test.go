package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RohitDev96/profile/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate(enabled))
	r.POST("/save", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return r
}

func TestAuthenticate_DisabledPassesThrough(t *testing.T) {
	r := authRouter(false)

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	r := authRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	helpers.SetJWTKey("test-secret")
	token, err := helpers.GenerateToken("alice@example.com")
	require.NoError(t, err)

	r := authRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_RejectsInvalidToken(t *testing.T) {
	helpers.SetJWTKey("test-secret")

	r := authRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
