package dto

type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,slug,max=255"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,max=2048"`
	WebsiteURL  string `json:"website_url" validate:"omitempty,url,max=2048"`
	PartnerType string `json:"partner_type" validate:"omitempty,max=100"`
	Status      *bool  `json:"status"`
	SortOrder   int    `json:"sort_order"`
}

type UpdatePartnerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=2048"`
	WebsiteURL  *string `json:"website_url" validate:"omitempty,url,max=2048"`
	PartnerType *string `json:"partner_type" validate:"omitempty,max=100"`
	Status      *bool   `json:"status"`
	SortOrder   *int    `json:"sort_order"`
}

func (r *UpdatePartnerRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "slug", r.Slug)
	setString(updates, "description", r.Description)
	setString(updates, "logo_url", r.LogoURL)
	setString(updates, "website_url", r.WebsiteURL)
	setString(updates, "partner_type", r.PartnerType)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
