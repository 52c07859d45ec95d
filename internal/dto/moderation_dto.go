package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReportRequest struct {
	RescueSlug    string `json:"rescue_slug" validate:"required"`
	AnimalId      string `json:"animal_id" validate:"omitempty,uuid4"`
	InquiryId     string `json:"inquiry_id" validate:"omitempty,uuid4"`
	ReporterEmail string `json:"reporter_email" validate:"required,email"`
	Reason        string `json:"reason" validate:"required,min=10,max=5000"`
}

type UpdateReportRequest struct {
	Id              uuid.UUID
	Status          string `json:"status" validate:"required,oneof=open triaged closed"`
	Outcome         string `json:"outcome" validate:"required,oneof=pending dismissed warned hidden suspended"`
	ResolutionNotes string `json:"resolution_notes" validate:"omitempty,max=5000"`
	// ExpiryDays only applies to hidden/suspended outcomes; zero means
	// indefinite.
	ExpiryDays int `json:"expiry_days" validate:"omitempty,min=1,max=365"`
}

type ReportResponse struct {
	Id              uuid.UUID  `json:"id"`
	RescueId        uuid.UUID  `json:"rescue_id"`
	RescueName      string     `json:"rescue_name,omitempty"`
	AnimalId        *uuid.UUID `json:"animal_id,omitempty"`
	InquiryId       *uuid.UUID `json:"inquiry_id,omitempty"`
	ReporterEmail   string     `json:"reporter_email"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	Outcome         *string    `json:"outcome,omitempty"`
	ResolutionNotes *string    `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ModerationActionResponse struct {
	Id         uuid.UUID  `json:"id"`
	RescueId   uuid.UUID  `json:"rescue_id"`
	ReportId   uuid.UUID  `json:"report_id"`
	ActionType string     `json:"action_type"`
	Reason     string     `json:"reason"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Resolved   bool       `json:"resolved"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReviewVerificationRequest struct {
	Id uuid.UUID
}

type VerificationRequestResponse struct {
	Id         uuid.UUID  `json:"id"`
	RescueId   uuid.UUID  `json:"rescue_id"`
	RescueName string     `json:"rescue_name,omitempty"`
	EIN        *string    `json:"ein,omitempty"`
	Details    *string    `json:"details,omitempty"`
	Status     string     `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type DisableRescueRequest struct {
	RescueId uuid.UUID
	Disabled bool `json:"disabled"`
}
