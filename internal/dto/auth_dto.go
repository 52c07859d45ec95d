package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token       string    `json:"token"`
	UserId      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

type ProfileResponse struct {
	Id          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionResponse is what the dashboard shell loads on boot: the caller's
// profile plus the resolved rescue context, when one exists.
type SessionResponse struct {
	Profile *ProfileResponse `json:"profile"`
	Rescue  *RescueResponse  `json:"rescue,omitempty"`
	Role    string           `json:"role,omitempty"`
}
