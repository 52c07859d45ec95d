package entity

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryNew         InquiryStatus = "new"
	InquiryContacted   InquiryStatus = "contacted"
	InquiryMeetGreet   InquiryStatus = "meet_greet"
	InquiryApplication InquiryStatus = "application"
	InquiryApproved    InquiryStatus = "approved"
	InquiryAdopted     InquiryStatus = "adopted"
	InquiryClosed      InquiryStatus = "closed"
)

func ValidInquiryStatus(status string) bool {
	switch InquiryStatus(status) {
	case InquiryNew, InquiryContacted, InquiryMeetGreet, InquiryApplication,
		InquiryApproved, InquiryAdopted, InquiryClosed:
		return true
	}
	return false
}

// StaleAfter is how long an inquiry may sit in "new" before it counts as
// unanswered on the dashboard.
const StaleAfter = 48 * time.Hour

type Inquiry struct {
	Id               uuid.UUID
	RescueId         uuid.UUID
	AnimalId         uuid.UUID
	AdopterName      string
	AdopterEmail     string
	Message          string
	Status           InquiryStatus
	AssignedTo       *uuid.UUID
	FirstRespondedAt *time.Time
	Archived         bool
	ArchivedAt       *time.Time
	ArchivedBy       *uuid.UUID
	TrackingToken    string
	TokenExpiresAt   *time.Time
	TokenRevokedAt   *time.Time
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Stale reports whether the inquiry is still new and past the response
// window.
func (i *Inquiry) Stale(now time.Time) bool {
	return i.Status == InquiryNew && now.Sub(i.CreatedAt) > StaleAfter
}

// TrackingUsable reports whether the adopter-facing tracking token still
// resolves.
func (i *Inquiry) TrackingUsable(now time.Time) bool {
	if i.TokenRevokedAt != nil {
		return false
	}
	if i.TokenExpiresAt != nil && now.After(*i.TokenExpiresAt) {
		return false
	}
	return true
}

type InquiryEventType string

const (
	EventStatusChange     InquiryEventType = "status_change"
	EventAssignmentChange InquiryEventType = "assignment_change"
	EventNote             InquiryEventType = "note"
	EventSystem           InquiryEventType = "system"
)

// InquiryEvent is the single append-only audit log for inquiry mutations.
// Status changes, assignment changes and notes all land here as tagged rows.
type InquiryEvent struct {
	Id        uuid.UUID
	InquiryId uuid.UUID
	EventType InquiryEventType
	FromValue *string
	ToValue   *string
	Body      *string
	ActorId   uuid.UUID
	CreatedAt time.Time
}

type InquiryNote struct {
	Id        uuid.UUID
	InquiryId uuid.UUID
	AuthorId  uuid.UUID
	Body      string
	CreatedAt time.Time
}
