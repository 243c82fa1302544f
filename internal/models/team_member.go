package models

import "gorm.io/datatypes"

type TeamMember struct {
	BaseModel
	Name         string `gorm:"not null"`
	Position     string
	Bio          string `gorm:"type:text"`
	Email        string
	Phone        string
	PhotoURL     string
	LinkedinURL  string
	InstagramURL string
	FacebookURL  string
	TwitterURL   string
	Skills       datatypes.JSON // serialized list of strings
	SortOrder    int            `gorm:"default:0;index"`
	IsActive     bool           `gorm:"index"`
	IsFeatured   bool           `gorm:"default:false"`
}
