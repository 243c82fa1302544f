package dto

type CreatePortfolioRequest struct {
	Title            string   `json:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"required,slug,max=255"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description" validate:"max=500"`
	ClientName       string   `json:"client_name" validate:"max=255"`
	EventDate        string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventLocation    string   `json:"event_location" validate:"max=255"`
	CategoryID       *uint    `json:"category_id"`
	Images           []string `json:"images" validate:"omitempty,dive,max=2048"`
	FeaturedImage    string   `json:"featured_image" validate:"omitempty,max=2048"`
	Featured         *bool    `json:"featured"`
	Completed        *bool    `json:"completed"`
	Status           *bool    `json:"status"`
	SortOrder        int      `json:"sort_order"`
}

type UpdatePortfolioRequest struct {
	Title            *string   `json:"title" validate:"omitempty,max=255"`
	Slug             *string   `json:"slug" validate:"omitempty,slug,max=255"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"short_description" validate:"omitempty,max=500"`
	ClientName       *string   `json:"client_name" validate:"omitempty,max=255"`
	EventDate        *string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventLocation    *string   `json:"event_location" validate:"omitempty,max=255"`
	CategoryID       *uint     `json:"category_id"`
	Images           *[]string `json:"images" validate:"omitempty,dive,max=2048"`
	FeaturedImage    *string   `json:"featured_image" validate:"omitempty,max=2048"`
	Featured         *bool     `json:"featured"`
	Completed        *bool     `json:"completed"`
	Status           *bool     `json:"status"`
	SortOrder        *int      `json:"sort_order"`
}

// ToUpdates covers the scalar columns; EventDate, CategoryID and Images
// need conversion and are handled by the service.
func (r *UpdatePortfolioRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "slug", r.Slug)
	setString(updates, "description", r.Description)
	setString(updates, "short_description", r.ShortDescription)
	setString(updates, "client_name", r.ClientName)
	setString(updates, "event_location", r.EventLocation)
	setString(updates, "featured_image", r.FeaturedImage)
	setBool(updates, "featured", r.Featured)
	setBool(updates, "completed", r.Completed)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,slug,max=255"`
	Description string `json:"description"`
	Status      *bool  `json:"status"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,slug,max=255"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
	SortOrder   *int    `json:"sort_order"`
}

func (r *UpdateCategoryRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "slug", r.Slug)
	setString(updates, "description", r.Description)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
