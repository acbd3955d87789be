package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirmpassword" form:"confirmpassword" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token       string    `json:"token"`
	UserID      uuid.UUID `json:"userId"`
	CreaterName string    `json:"createrName"`
	Message     string    `json:"message"`
}
