package dto

type CreateHeroSectionRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Subtitle        string `json:"subtitle" validate:"max=255"`
	Description     string `json:"description"`
	BackgroundImage string `json:"background_image" validate:"omitempty,max=2048"`
	CTAText         string `json:"cta_text" validate:"max=100"`
	CTALink         string `json:"cta_link" validate:"omitempty,max=2048"`
	IsActive        *bool  `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
}

type UpdateHeroSectionRequest struct {
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Subtitle        *string `json:"subtitle" validate:"omitempty,max=255"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"background_image" validate:"omitempty,max=2048"`
	CTAText         *string `json:"cta_text" validate:"omitempty,max=100"`
	CTALink         *string `json:"cta_link" validate:"omitempty,max=2048"`
	IsActive        *bool   `json:"is_active"`
	SortOrder       *int    `json:"sort_order"`
}

func (r *UpdateHeroSectionRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "subtitle", r.Subtitle)
	setString(updates, "description", r.Description)
	setString(updates, "background_image", r.BackgroundImage)
	setString(updates, "cta_text", r.CTAText)
	setString(updates, "cta_link", r.CTALink)
	setBool(updates, "is_active", r.IsActive)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
