package dto

type CreatePageSectionRequest struct {
	Page       string                 `json:"page" validate:"required,max=100"`
	SectionKey string                 `json:"section_key" validate:"required,max=100"`
	Title      string                 `json:"title" validate:"max=255"`
	Content    map[string]interface{} `json:"content"`
	IsActive   *bool                  `json:"is_active"`
	SortOrder  int                    `json:"sort_order"`
}

type UpdatePageSectionRequest struct {
	Page       *string                 `json:"page" validate:"omitempty,max=100"`
	SectionKey *string                 `json:"section_key" validate:"omitempty,max=100"`
	Title      *string                 `json:"title" validate:"omitempty,max=255"`
	Content    *map[string]interface{} `json:"content"`
	IsActive   *bool                   `json:"is_active"`
	SortOrder  *int                    `json:"sort_order"`
}

// ToUpdates covers the scalar columns; Content is serialized by the
// service.
func (r *UpdatePageSectionRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "page", r.Page)
	setString(updates, "section_key", r.SectionKey)
	setString(updates, "title", r.Title)
	setBool(updates, "is_active", r.IsActive)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
