package dto

type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Position string `json:"position" validate:"max=255"`
	Company  string `json:"company" validate:"max=255"`
	Content  string `json:"content" validate:"required"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL string `json:"image_url" validate:"omitempty,max=2048"`
	Status   *bool  `json:"status"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Position *string `json:"position" validate:"omitempty,max=255"`
	Company  *string `json:"company" validate:"omitempty,max=255"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=2048"`
	Status   *bool   `json:"status"`
}

// ToUpdates maps only the fields present in the request onto column
// updates, so absent fields are left untouched.
func (r *UpdateTestimonialRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "position", r.Position)
	setString(updates, "company", r.Company)
	setString(updates, "content", r.Content)
	setInt(updates, "rating", r.Rating)
	setString(updates, "image_url", r.ImageURL)
	setBool(updates, "status", r.Status)
	return updates
}
