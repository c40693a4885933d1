package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougladias/vida-plena-api/pkg/auth"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	m := NewAuthMiddleware(jwtSvc)

	r := gin.New()
	r.GET("/protegido", m.Authenticate(), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return r, jwtSvc
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthenticateMissingToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token não fornecido", errorBody(t, w))
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r, jwtSvc := setupAuthRouter(t)

	token, err := jwtSvc.GenerateToken(uuid.New(), "ana@vidaplena.com.br")
	require.NoError(t, err)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token não fornecido", errorBody(t, w))
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token inválido", errorBody(t, w))
}

func TestAuthenticateValidToken(t *testing.T) {
	r, jwtSvc := setupAuthRouter(t)

	userID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID, "ana@vidaplena.com.br")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["user_id"])
}
