package api

// UpdateUserRequest carries the only two user fields a caller may change.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  string `json:"name" form:"name" validate:"required,max=255" example:"Harry Oswald"`
	Email string `json:"email" form:"email" validate:"required,email,max=255" example:"harryoswald@gmail.com"`
}
