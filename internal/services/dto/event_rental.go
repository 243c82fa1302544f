package dto

type CreateEventRentalRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Slug        string  `json:"slug" validate:"required,slug,max=255"`
	Description string  `json:"description"`
	RentalType  string  `json:"rental_type" validate:"omitempty,max=100"`
	PricePerDay float64 `json:"price_per_day" validate:"omitempty,min=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=2048"`
	Available   *bool   `json:"available"`
	Featured    *bool   `json:"featured"`
	SortOrder   int     `json:"sort_order"`
}

type UpdateEventRentalRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Slug        *string  `json:"slug" validate:"omitempty,slug,max=255"`
	Description *string  `json:"description"`
	RentalType  *string  `json:"rental_type" validate:"omitempty,max=100"`
	PricePerDay *float64 `json:"price_per_day" validate:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=2048"`
	Available   *bool    `json:"available"`
	Featured    *bool    `json:"featured"`
	SortOrder   *int     `json:"sort_order"`
}

func (r *UpdateEventRentalRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "slug", r.Slug)
	setString(updates, "description", r.Description)
	setString(updates, "rental_type", r.RentalType)
	setFloat(updates, "price_per_day", r.PricePerDay)
	setString(updates, "image_url", r.ImageURL)
	setBool(updates, "available", r.Available)
	setBool(updates, "featured", r.Featured)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
