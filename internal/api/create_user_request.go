package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255" example:"Harry Oswald"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255" example:"harryoswald@gmail.com"`
	Password string `json:"password" form:"password" validate:"required,min=8" example:"password1234"`
}
