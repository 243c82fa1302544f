package models

import "gorm.io/datatypes"

type PageSection struct {
	BaseModel
	Page       string         `gorm:"not null;index:idx_page_section,unique"`
	SectionKey string         `gorm:"not null;index:idx_page_section,unique"`
	Title      string
	Content    datatypes.JSON // free-form section content
	IsActive   bool           `gorm:"index"`
	SortOrder  int            `gorm:"default:0;index"`
}
