package repositories

import (
	"time"

	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

type UserRepository struct {
	Repository[models.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		Repository: NewRepositoryOrdered[models.User]("created_at DESC"),
	}
}

func (r *UserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	return r.FindOne(db, Query{}.Where("email = ?", email))
}

type AccessTokenRepository struct {
	Repository[models.AccessToken]
}

func NewAccessTokenRepository() *AccessTokenRepository {
	return &AccessTokenRepository{
		Repository: NewRepositoryOrdered[models.AccessToken]("created_at DESC"),
	}
}

// FindValid returns the token row with the given id only when its stored
// hash matches and it has not expired.
func (r *AccessTokenRepository) FindValid(db *gorm.DB, id uint, tokenHash string, now time.Time) (*models.AccessToken, error) {
	var token models.AccessToken
	err := db.Preload("User").
		Where("id = ? AND token_hash = ? AND expires_at > ?", id, tokenHash, now).
		First(&token).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &token, nil
}

// Touch records when the token was last presented. Failures are not
// fatal to the request, so the caller may ignore the error.
func (r *AccessTokenRepository) Touch(db *gorm.DB, id uint, now time.Time) error {
	return db.Model(&models.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", now).Error
}

// DeleteForUser revokes every token belonging to the user.
func (r *AccessTokenRepository) DeleteForUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

// DeleteExpired prunes tokens whose lifetime has passed.
func (r *AccessTokenRepository) DeleteExpired(db *gorm.DB, now time.Time) error {
	return db.Where("expires_at <= ?", now).Delete(&models.AccessToken{}).Error
}
