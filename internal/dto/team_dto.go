package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin staff"`
}

type CreateInvitationResponse struct {
	Id    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}

type UpdateMemberRoleRequest struct {
	UserId uuid.UUID
	Role   string `json:"role" validate:"required,oneof=admin staff"`
}

type MemberResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

type InvitationResponse struct {
	Id         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
