package models

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

type User struct {
	BaseModel
	Name         string   `gorm:"not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);default:'editor'"`
	IsActive     bool
}

// AccessToken is an opaque, revocable bearer token bound to one user.
// Only the SHA-256 hash of the secret half is stored.
type AccessToken struct {
	BaseModel
	UserID     uint   `gorm:"not null;index"`
	TokenHash  string `gorm:"uniqueIndex;not null"`
	ExpiresAt  time.Time
	LastUsedAt *time.Time

	User *User `gorm:"foreignKey:UserID"`
}
