package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventcms_backend/internal/auth"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
	"eventcms_backend/test/helpers"
)

func newAuthService(t *testing.T) (services.AuthService, *gorm.DB) {
	t.Helper()
	db := helpers.NewTestDB(t)
	svc := services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewAccessTokenRepository(),
		time.Hour,
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		Name:         "Seeded User",
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleEditor,
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	seedUser(t, db, "editor@example.com", "correct-horse")

	result, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	user, tokenID, err := svc.Authenticate(ctx, db, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", user.Email)
	assert.NotZero(t, tokenID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	seedUser(t, db, "editor@example.com", "correct-horse")

	_, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "wrong"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestAuthService_LoginUnknownEmailSameMessage(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.Login(context.Background(), db, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	svc, db := newAuthService(t)
	u := seedUser(t, db, "editor@example.com", "correct-horse")
	require.NoError(t, db.Model(u).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestAuthService_LogoutRevokesOnlyThatToken(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	seedUser(t, db, "editor@example.com", "correct-horse")

	first, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, firstID, err := svc.Authenticate(ctx, db, first.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, db, firstID))

	_, _, err = svc.Authenticate(ctx, db, first.Token)
	assert.Error(t, err)
	_, _, err = svc.Authenticate(ctx, db, second.Token)
	assert.NoError(t, err)
}

func TestAuthService_AuthenticateExpiredToken(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	u := seedUser(t, db, "editor@example.com", "correct-horse")

	result, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.AccessToken{}).
		Where("user_id = ?", u.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, _, err = svc.Authenticate(ctx, db, result.Token)
	assert.Error(t, err)
}

func TestAuthService_ChangePasswordRevokesSessions(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	u := seedUser(t, db, "editor@example.com", "correct-horse")

	result, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, db, u.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "battery-staple",
	})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, db, result.Token)
	assert.Error(t, err)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "battery-staple"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	svc, db := newAuthService(t)
	u := seedUser(t, db, "editor@example.com", "correct-horse")

	err := svc.ChangePassword(context.Background(), db, u.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "battery-staple",
	})
	require.Error(t, err)
}

func TestAuthService_DeactivatingUserRevokesTokens(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	u := seedUser(t, db, "editor@example.com", "correct-horse")

	result, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateUser(ctx, db, u.ID, &dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, db, result.Token)
	assert.Error(t, err)
}

func TestAuthService_CreateUserDefaultsToEditor(t *testing.T) {
	svc, db := newAuthService(t)

	u, err := svc.CreateUser(context.Background(), db, &dto.CreateUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "long-enough-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleEditor, u.Role)
	assert.True(t, u.IsActive)
}

func TestAuthService_CreateUserDuplicateEmail(t *testing.T) {
	svc, db := newAuthService(t)
	seedUser(t, db, "taken@example.com", "correct-horse")

	_, err := svc.CreateUser(context.Background(), db, &dto.CreateUserRequest{
		Name:     "Other",
		Email:    "taken@example.com",
		Password: "long-enough-pass",
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}
