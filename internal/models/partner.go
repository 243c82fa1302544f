package models

type Partner struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	LogoURL     string
	WebsiteURL  string
	PartnerType string `gorm:"index"`
	Status      bool   `gorm:"index"`
	SortOrder   int    `gorm:"default:0;index"`
}
