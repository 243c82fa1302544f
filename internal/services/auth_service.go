package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"eventcms_backend/internal/auth"
	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
)

// LoginResult carries the plaintext token back to the client exactly
// once; it is never reconstructable afterwards.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, db *gorm.DB, tokenID uint) error
	Authenticate(ctx context.Context, db *gorm.DB, bearer string) (*models.User, uint, error)

	ListUsers(ctx context.Context, db *gorm.DB, page, perPage int) (*repositories.Page[models.User], error)
	GetUser(ctx context.Context, db *gorm.DB, id uint) (*models.User, error)
	CreateUser(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, db *gorm.DB, id uint) error
	UpdateProfile(ctx context.Context, db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, db *gorm.DB, userID uint, req *dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.AccessTokenRepository
	tokenTTL  time.Duration
}

func NewAuthService(userRepo *repositories.UserRepository, tokenRepo *repositories.AccessTokenRepository, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokenTTL:  tokenTTL,
	}
}

// Login verifies credentials and issues a fresh opaque token. Bad email
// and bad password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	}

	secret, hash, err := auth.GenerateSecret()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token := &models.AccessToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.Create(db, token); err != nil {
		return nil, serviceError(err)
	}

	// Opportunistic cleanup of this user's stale tokens.
	if err := s.tokenRepo.DeleteExpired(db, time.Now()); err != nil {
		logger.CtxWarn(ctx, "failed to prune expired tokens", "error", err)
	}

	return &LoginResult{
		Token:     auth.ComposeToken(token.ID, secret),
		ExpiresAt: token.ExpiresAt,
		User:      user,
	}, nil
}

func (s *authService) Logout(ctx context.Context, db *gorm.DB, tokenID uint) error {
	if err := s.tokenRepo.Delete(db, tokenID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// Authenticate resolves a presented bearer token to its user. It also
// returns the token id so logout can revoke exactly this token.
func (s *authService) Authenticate(ctx context.Context, db *gorm.DB, bearer string) (*models.User, uint, error) {
	unauthorized := apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

	id, secret, err := auth.ParseToken(bearer)
	if err != nil {
		return nil, 0, unauthorized
	}

	token, err := s.tokenRepo.FindValid(db, id, auth.HashSecret(secret), time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, 0, unauthorized
		}
		return nil, 0, apperrors.InternalError(err)
	}
	if token.User == nil || !token.User.IsActive {
		return nil, 0, unauthorized
	}

	if err := s.tokenRepo.Touch(db, token.ID, time.Now()); err != nil {
		logger.CtxDebug(ctx, "failed to update token last_used_at", "error", err)
	}

	return token.User, token.ID, nil
}

func (s *authService) ListUsers(ctx context.Context, db *gorm.DB, page, perPage int) (*repositories.Page[models.User], error) {
	return s.userRepo.Paginate(db, repositories.Query{}, page, perPage)
}

func (s *authService) GetUser(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	u, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return u, nil
}

func (s *authService) CreateUser(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleEditor
	}

	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(db, u); err != nil {
		return nil, serviceError(err)
	}
	return u, nil
}

func (s *authService) UpdateUser(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.userRepo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("User")
			}
			return nil, serviceError(err)
		}
	}
	// Deactivation revokes all sessions immediately.
	if req.IsActive != nil && !*req.IsActive {
		if err := s.tokenRepo.DeleteForUser(db, id); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return s.GetUser(ctx, db, id)
}

func (s *authService) DeleteUser(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.tokenRepo.DeleteForUser(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("User")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.userRepo.Update(db, userID, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("User")
			}
			return nil, serviceError(err)
		}
	}
	return s.GetUser(ctx, db, userID)
}

func (s *authService) ChangePassword(ctx context.Context, db *gorm.DB, userID uint, req *dto.ChangePasswordRequest) error {
	u, err := s.GetUser(ctx, db, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(req.CurrentPassword, u.PasswordHash) {
		return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Current password is incorrect", http.StatusUnauthorized)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Update(db, userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return serviceError(err)
	}

	// Other sessions should not survive a password change.
	return serviceErrorOrNil(s.tokenRepo.DeleteForUser(db, userID))
}

func serviceErrorOrNil(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.InternalError(err)
}
