package models

import "gorm.io/datatypes"

type Service struct {
	BaseModel
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Icon        string
	ImageURL    string
	Features    datatypes.JSON // serialized list of strings
	Status      bool           `gorm:"index"`
	SortOrder   int            `gorm:"default:0;index"`
}
