package models

type HeroSection struct {
	BaseModel
	Title           string `gorm:"not null"`
	Subtitle        string
	Description     string `gorm:"type:text"`
	BackgroundImage string
	CTAText         string `gorm:"column:cta_text"`
	CTALink         string `gorm:"column:cta_link"`
	IsActive        bool   `gorm:"index"`
	SortOrder       int    `gorm:"default:0;index"`
}
