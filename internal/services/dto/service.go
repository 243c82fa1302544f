package dto

type CreateServiceRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Slug        string   `json:"slug" validate:"required,slug,max=255"`
	Description string   `json:"description"`
	Icon        string   `json:"icon" validate:"omitempty,max=255"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048"`
	Features    []string `json:"features" validate:"omitempty,dive,max=255"`
	Status      *bool    `json:"status"`
	SortOrder   int      `json:"sort_order"`
}

type UpdateServiceRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	Slug        *string   `json:"slug" validate:"omitempty,slug,max=255"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon" validate:"omitempty,max=255"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,max=2048"`
	Features    *[]string `json:"features" validate:"omitempty,dive,max=255"`
	Status      *bool     `json:"status"`
	SortOrder   *int      `json:"sort_order"`
}

func (r *UpdateServiceRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "slug", r.Slug)
	setString(updates, "description", r.Description)
	setString(updates, "icon", r.Icon)
	setString(updates, "image_url", r.ImageURL)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
