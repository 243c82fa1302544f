package models

import "gorm.io/datatypes"

type CompanyInformation struct {
	BaseModel
	CompanyName string `gorm:"not null"`
	Tagline     string
	About       string `gorm:"type:text"`
	Email       string
	Phone       string
	Address     string
	LogoURL     string
	FaviconURL  string
	SocialLinks datatypes.JSON // serialized map: platform -> URL
	IsActive    bool           `gorm:"index"`
}

func (CompanyInformation) TableName() string {
	return "company_information"
}
