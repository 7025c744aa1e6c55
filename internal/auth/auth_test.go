package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	service := auth.NewAuthService("test-secret")
	userID := uuid.New()
	companyID := uuid.New()

	token, err := service.GenerateJWT(userID, companyID, models.RoleCarer, "carer@agency.example")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.Equal(t, models.RoleCarer, claims.Role)
	assert.Equal(t, "carer@agency.example", claims.Email)

	actor := claims.Actor()
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, companyID, actor.CompanyID)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewAuthService("secret-a").GenerateJWT(uuid.New(), uuid.New(), models.RoleManager, "m@x.example")
	require.NoError(t, err)

	_, err = auth.NewAuthService("secret-b").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := auth.NewAuthService("s").ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsUnknownRole(t *testing.T) {
	service := auth.NewAuthService("s")
	token, err := service.GenerateJWT(uuid.New(), uuid.New(), models.Role("superuser"), "x@x.example")
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := auth.NewAuthService("test-secret")
	middleware := auth.NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		actor, ok := auth.ActorFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
	})

	// no header
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed header
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token
	token, err := service.GenerateJWT(uuid.New(), uuid.New(), models.RoleAdmin, "a@x.example")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
