package dto

type CreateTeamMemberRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Position     string   `json:"position" validate:"max=255"`
	Bio          string   `json:"bio"`
	Email        string   `json:"email" validate:"omitempty,email,max=255"`
	Phone        string   `json:"phone" validate:"max=50"`
	PhotoURL     string   `json:"photo_url" validate:"omitempty,max=2048"`
	LinkedinURL  string   `json:"linkedin_url" validate:"omitempty,max=2048"`
	InstagramURL string   `json:"instagram_url" validate:"omitempty,max=2048"`
	FacebookURL  string   `json:"facebook_url" validate:"omitempty,max=2048"`
	TwitterURL   string   `json:"twitter_url" validate:"omitempty,max=2048"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=100"`
	SortOrder    int      `json:"sort_order"`
	IsActive     *bool    `json:"is_active"`
	IsFeatured   *bool    `json:"is_featured"`
}

type UpdateTeamMemberRequest struct {
	Name         *string   `json:"name" validate:"omitempty,max=255"`
	Position     *string   `json:"position" validate:"omitempty,max=255"`
	Bio          *string   `json:"bio"`
	Email        *string   `json:"email" validate:"omitempty,email,max=255"`
	Phone        *string   `json:"phone" validate:"omitempty,max=50"`
	PhotoURL     *string   `json:"photo_url" validate:"omitempty,max=2048"`
	LinkedinURL  *string   `json:"linkedin_url" validate:"omitempty,max=2048"`
	InstagramURL *string   `json:"instagram_url" validate:"omitempty,max=2048"`
	FacebookURL  *string   `json:"facebook_url" validate:"omitempty,max=2048"`
	TwitterURL   *string   `json:"twitter_url" validate:"omitempty,max=2048"`
	Skills       *[]string `json:"skills" validate:"omitempty,dive,max=100"`
	SortOrder    *int      `json:"sort_order"`
	IsActive     *bool     `json:"is_active"`
	IsFeatured   *bool     `json:"is_featured"`
}

// ToUpdates covers the scalar columns; Skills is serialized by the
// service since it lives in a JSON column.
func (r *UpdateTeamMemberRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "position", r.Position)
	setString(updates, "bio", r.Bio)
	setString(updates, "email", r.Email)
	setString(updates, "phone", r.Phone)
	setString(updates, "photo_url", r.PhotoURL)
	setString(updates, "linkedin_url", r.LinkedinURL)
	setString(updates, "instagram_url", r.InstagramURL)
	setString(updates, "facebook_url", r.FacebookURL)
	setString(updates, "twitter_url", r.TwitterURL)
	setInt(updates, "sort_order", r.SortOrder)
	setBool(updates, "is_active", r.IsActive)
	setBool(updates, "is_featured", r.IsFeatured)
	return updates
}
