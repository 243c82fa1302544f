package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventcms_backend/internal/auth"
	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/test/helpers"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := helpers.NewTestDB(t)
	authService := services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewAccessTokenRepository(),
		time.Hour,
	)

	router := gin.New()
	router.Use(middleware.DB(db))

	protected := router.Group("/protected", middleware.RequireAuth(authService))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	adminOnly := router.Group("/admin-only", middleware.RequireAuth(authService), middleware.RequireAdmin())
	adminOnly.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, db, authService
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	u := &models.User{Name: "Test User", Email: email, PasswordHash: hash, Role: role, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func loginToken(t *testing.T, db *gorm.DB, svc services.AuthService, email string) string {
	t.Helper()
	result, err := svc.Login(context.Background(), db, &dto.LoginRequest{Email: email, Password: "secret-password"})
	require.NoError(t, err)
	return result.Token
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	rec := get(router, "/protected/ping", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	rec := get(router, "/protected/ping", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router, db, svc := newAuthRouter(t)
	createUser(t, db, "editor@example.com", models.UserRoleEditor)
	token := loginToken(t, db, svc, "editor@example.com")

	rec := get(router, "/protected/ping", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	router, db, svc := newAuthRouter(t)
	user := createUser(t, db, "editor@example.com", models.UserRoleEditor)
	token := loginToken(t, db, svc, "editor@example.com")

	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.AccessToken{}).Error)

	rec := get(router, "/protected/ping", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_DeactivatedUser(t *testing.T) {
	router, db, svc := newAuthRouter(t)
	user := createUser(t, db, "editor@example.com", models.UserRoleEditor)
	token := loginToken(t, db, svc, "editor@example.com")

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	rec := get(router, "/protected/ping", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_EditorForbidden(t *testing.T) {
	router, db, svc := newAuthRouter(t)
	createUser(t, db, "editor@example.com", models.UserRoleEditor)
	token := loginToken(t, db, svc, "editor@example.com")

	rec := get(router, "/admin-only/ping", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	router, db, svc := newAuthRouter(t)
	createUser(t, db, "admin@example.com", models.UserRoleAdmin)
	token := loginToken(t, db, svc, "admin@example.com")

	rec := get(router, "/admin-only/ping", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
