package dto

type CreateCompanyInformationRequest struct {
	CompanyName string            `json:"company_name" validate:"required,max=255"`
	Tagline     string            `json:"tagline" validate:"max=255"`
	About       string            `json:"about"`
	Email       string            `json:"email" validate:"omitempty,email,max=255"`
	Phone       string            `json:"phone" validate:"max=50"`
	Address     string            `json:"address" validate:"max=500"`
	LogoURL     string            `json:"logo_url" validate:"omitempty,max=2048"`
	FaviconURL  string            `json:"favicon_url" validate:"omitempty,max=2048"`
	SocialLinks map[string]string `json:"social_links" validate:"omitempty,dive,max=2048"`
	IsActive    *bool             `json:"is_active"`
}

type UpdateCompanyInformationRequest struct {
	CompanyName *string            `json:"company_name" validate:"omitempty,max=255"`
	Tagline     *string            `json:"tagline" validate:"omitempty,max=255"`
	About       *string            `json:"about"`
	Email       *string            `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string            `json:"phone" validate:"omitempty,max=50"`
	Address     *string            `json:"address" validate:"omitempty,max=500"`
	LogoURL     *string            `json:"logo_url" validate:"omitempty,max=2048"`
	FaviconURL  *string            `json:"favicon_url" validate:"omitempty,max=2048"`
	SocialLinks *map[string]string `json:"social_links" validate:"omitempty,dive,max=2048"`
	IsActive    *bool              `json:"is_active"`
}

// ToUpdates covers the scalar columns; SocialLinks is serialized by the
// service.
func (r *UpdateCompanyInformationRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "company_name", r.CompanyName)
	setString(updates, "tagline", r.Tagline)
	setString(updates, "about", r.About)
	setString(updates, "email", r.Email)
	setString(updates, "phone", r.Phone)
	setString(updates, "address", r.Address)
	setString(updates, "logo_url", r.LogoURL)
	setString(updates, "favicon_url", r.FaviconURL)
	setBool(updates, "is_active", r.IsActive)
	return updates
}
