package models

type EventRental struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	RentalType  string `gorm:"index"`
	PricePerDay float64
	ImageURL    string
	Available   bool `gorm:"index"`
	Featured    bool `gorm:"default:false;index"`
	SortOrder   int  `gorm:"default:0;index"`
}
