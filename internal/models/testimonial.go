package models

type Testimonial struct {
	BaseModel
	Name     string `gorm:"not null"`
	Position string
	Company  string
	Content  string `gorm:"type:text;not null"`
	Rating   int    `gorm:"default:5"`
	ImageURL string
	Status   bool `gorm:"default:false;index"`
}
