package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitInquiryRequest struct {
	AnimalId     uuid.UUID `json:"animal_id" validate:"required"`
	AdopterName  string    `json:"adopter_name" validate:"required,min=2,max=120"`
	AdopterEmail string    `json:"adopter_email" validate:"required,email"`
	Message      string    `json:"message" validate:"required,min=10,max=5000"`
}

type SubmitInquiryResponse struct {
	Id            uuid.UUID `json:"id"`
	TrackingToken string    `json:"tracking_token"`
}

type UpdateInquiryStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=new contacted meet_greet application approved adopted closed"`
}

type UpdateInquiryAssignmentRequest struct {
	Id uuid.UUID
	// Empty AssignedTo clears the assignment.
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

type AddInquiryNoteRequest struct {
	Id   uuid.UUID
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

type BulkInquiryRequest struct {
	Ids        []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
	Status     string      `json:"status" validate:"omitempty,oneof=new contacted meet_greet application approved adopted closed"`
	AssignedTo *uuid.UUID  `json:"assigned_to"`
}

// ListInquiriesQuery filters the dashboard inbox. Archived toggles the view
// partition; everything else narrows within it.
type ListInquiriesQuery struct {
	Status   string `query:"status" validate:"omitempty,oneof=new contacted meet_greet application approved adopted closed"`
	Days     int    `query:"days" validate:"omitempty,min=1,max=365"`
	Stale    bool   `query:"stale"`
	Assignee string `query:"assignee"`
	Species  string `query:"species"`
	Archived bool   `query:"archived"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
}

type InquiryResponse struct {
	Id               uuid.UUID  `json:"id"`
	AnimalId         uuid.UUID  `json:"animal_id"`
	AnimalName       string     `json:"animal_name,omitempty"`
	AdopterName      string     `json:"adopter_name"`
	AdopterEmail     string     `json:"adopter_email"`
	Message          string     `json:"message"`
	Status           string     `json:"status"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	FirstRespondedAt *time.Time `json:"first_responded_at,omitempty"`
	Archived         bool       `json:"archived"`
	Stale            bool       `json:"stale"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type InquiryListResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

type InquiryEventResponse struct {
	Id        uuid.UUID `json:"id"`
	EventType string    `json:"event_type"`
	FromValue *string   `json:"from_value,omitempty"`
	ToValue   *string   `json:"to_value,omitempty"`
	Body      *string   `json:"body,omitempty"`
	ActorId   uuid.UUID `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryDetailResponse is the full drawer view: the inquiry, its event
// timeline and a duplicate hint when the same adopter asked about the same
// animal within the look-back window.
type InquiryDetailResponse struct {
	Inquiry       InquiryResponse        `json:"inquiry"`
	Events        []InquiryEventResponse `json:"events"`
	DuplicateHint bool                   `json:"duplicate_hint"`
}

type InquiryCountsResponse struct {
	Recent     int64 `json:"recent"`
	NoResponse int64 `json:"no_response"`
}

// TrackingStatusResponse is the adopter-facing lookup by tracking token. It
// deliberately exposes only coarse progress.
type TrackingStatusResponse struct {
	AnimalName  string    `json:"animal_name"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
