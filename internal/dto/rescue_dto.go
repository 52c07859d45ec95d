package dto

import (
	"time"

	"github.com/google/uuid"
)

type OnboardRescueRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	IsPublic     bool   `json:"is_public"`
}

type UpdateRescueSettingsRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	IsPublic     bool   `json:"is_public"`
}

type RescueResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	ContactEmail       string     `json:"contact_email"`
	IsPublic           bool       `json:"is_public"`
	Disabled           bool       `json:"disabled"`
	PlanTier           string     `json:"plan_tier"`
	SubscriptionStatus *string    `json:"subscription_status,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
	VerificationStatus string     `json:"verification_status"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PublicRescueResponse is the unauthenticated adoption-page view. It never
// exposes contact ownership or billing state.
type PublicRescueResponse struct {
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	VerificationStatus string `json:"verification_status"`
}

type RequestVerificationRequest struct {
	EIN     string `json:"ein" validate:"omitempty,min=9,max=10"`
	Details string `json:"details" validate:"omitempty,max=2000"`
}
