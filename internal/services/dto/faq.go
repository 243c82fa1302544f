package dto

type CreateFAQRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category" validate:"omitempty,max=100"`
	Status    *bool  `json:"status"`
	SortOrder int    `json:"sort_order"`
}

type UpdateFAQRequest struct {
	Question  *string `json:"question" validate:"omitempty,min=1"`
	Answer    *string `json:"answer" validate:"omitempty,min=1"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	Status    *bool   `json:"status"`
	SortOrder *int    `json:"sort_order"`
}

func (r *UpdateFAQRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "question", r.Question)
	setString(updates, "answer", r.Answer)
	setString(updates, "category", r.Category)
	setBool(updates, "status", r.Status)
	setInt(updates, "sort_order", r.SortOrder)
	return updates
}
