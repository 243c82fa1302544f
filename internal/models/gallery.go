package models

import (
	"time"

	"gorm.io/datatypes"
)

type Gallery struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	CategoryID  *uint  `gorm:"index"`
	Images      datatypes.JSON // serialized list of storage paths or URLs
	CoverImage  string
	EventDate   *time.Time
	Status      bool `gorm:"index"`
	SortOrder   int  `gorm:"default:0;index"`

	Category *GalleryCategory `gorm:"foreignKey:CategoryID"`
}

type GalleryCategory struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Status      bool   `gorm:"index"`
	SortOrder   int    `gorm:"default:0;index"`
}
