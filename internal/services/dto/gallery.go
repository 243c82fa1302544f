package dto

type CreateGalleryRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	Images      []string `json:"images" validate:"omitempty,dive,max=2048"`
	CoverImage  string   `json:"cover_image" validate:"omitempty,max=2048"`
	EventDate   string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *bool    `json:"status"`
	SortOrder   int      `json:"sort_order"`
}

type UpdateGalleryRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
	CategoryID  *uint     `json:"category_id"`
	Images      *[]string `json:"images" validate:"omitempty,dive,max=2048"`
	CoverImage  *string   `json:"cover_image" validate:"omitempty,max=2048"`
	EventDate   *string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *bool     `json:"status"`
	SortOrder   *int      `json:"sort_order"`
}

func (r *UpdateGalleryRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "description", r.Description)
	setString(updates, "cover_image", r.CoverImage)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
