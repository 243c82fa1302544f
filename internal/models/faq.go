package models

type FAQ struct {
	BaseModel
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	Category  string `gorm:"index"`
	Status    bool   `gorm:"index"`
	SortOrder int    `gorm:"default:0;index"`
}
