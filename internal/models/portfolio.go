package models

import (
	"time"

	"gorm.io/datatypes"
)

type Portfolio struct {
	BaseModel
	Title            string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex;not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string
	ClientName       string
	EventDate        *time.Time
	EventLocation    string
	CategoryID       *uint          `gorm:"index"`
	Images           datatypes.JSON // serialized list of storage paths or URLs
	FeaturedImage    string
	Featured         bool `gorm:"default:false;index"`
	Completed        bool
	Status           bool `gorm:"index"`
	SortOrder        int  `gorm:"default:0;index"`

	Category *PortfolioCategory `gorm:"foreignKey:CategoryID"`
}

type PortfolioCategory struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Status      bool   `gorm:"index"`
	SortOrder   int    `gorm:"default:0;index"`
}
