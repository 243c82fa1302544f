package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "email", r.Email)
	setString(updates, "role", r.Role)
	setBool(updates, "is_active", r.IsActive)
	return updates
}

// UpdateProfileRequest is the self-service subset of UpdateUserRequest:
// role and active flag stay admin-only.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func (r *UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "email", r.Email)
	return updates
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}
