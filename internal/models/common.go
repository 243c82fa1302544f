package models

import (
	"time"
)

// BaseModel carries the identity and server-assigned timestamps shared by
// every entity. IDs are immutable once assigned.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
