package api

import (
	"time"

	"easybill/internal/model"
)

// UserResponse is the public-safe user representation: the password hash
// never leaves the store layer.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Harry Oswald"`
	Email     string    `json:"email" example:"harryoswald@gmail.com"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserEnvelope wraps a single user. Message is omitted on plain reads.
// swagger:model api.UserEnvelope
type UserEnvelope struct {
	Message string       `json:"message,omitempty" example:"User created!"`
	User    UserResponse `json:"user"`
}

// UserListEnvelope wraps the full user listing under the "data" key.
// swagger:model api.UserListEnvelope
type UserListEnvelope struct {
	Message string         `json:"message" example:"Request Successfull"`
	Data    []UserResponse `json:"data"`
}
