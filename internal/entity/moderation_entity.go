package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportOpen    ReportStatus = "open"
	ReportTriaged ReportStatus = "triaged"
	ReportClosed  ReportStatus = "closed"
)

func ValidReportStatus(status string) bool {
	switch ReportStatus(status) {
	case ReportOpen, ReportTriaged, ReportClosed:
		return true
	}
	return false
}

type ReportOutcome string

const (
	OutcomePending   ReportOutcome = "pending"
	OutcomeDismissed ReportOutcome = "dismissed"
	OutcomeWarned    ReportOutcome = "warned"
	OutcomeHidden    ReportOutcome = "hidden"
	OutcomeSuspended ReportOutcome = "suspended"
)

func ValidReportOutcome(outcome string) bool {
	switch ReportOutcome(outcome) {
	case OutcomePending, OutcomeDismissed, OutcomeWarned, OutcomeHidden, OutcomeSuspended:
		return true
	}
	return false
}

type AbuseReport struct {
	Id              uuid.UUID
	RescueId        uuid.UUID
	AnimalId        *uuid.UUID
	InquiryId       *uuid.UUID
	ReporterEmail   string
	Reason          string
	Status          ReportStatus
	Outcome         *ReportOutcome
	ResolutionNotes *string
	ResolvedAt      *time.Time
	ResolvedBy      *uuid.UUID
	CreatedAt       time.Time
}

type ModerationActionType string

const (
	ActionWarn    ModerationActionType = "warn"
	ActionHide    ModerationActionType = "hide"
	ActionSuspend ModerationActionType = "suspend"
	ActionDismiss ModerationActionType = "dismiss"
)

// ActionForOutcome maps a resolved report outcome onto the recorded action.
func ActionForOutcome(outcome ReportOutcome) (ModerationActionType, bool) {
	switch outcome {
	case OutcomeWarned:
		return ActionWarn, true
	case OutcomeHidden:
		return ActionHide, true
	case OutcomeSuspended:
		return ActionSuspend, true
	case OutcomeDismissed:
		return ActionDismiss, true
	}
	return "", false
}

// ModerationAction is an immutable record of an operator decision. Hides and
// suspensions may carry an expiry for temporary enforcement.
type ModerationAction struct {
	Id         uuid.UUID
	RescueId   uuid.UUID
	AnimalId   *uuid.UUID
	InquiryId  *uuid.UUID
	ReportId   uuid.UUID
	ActionType ModerationActionType
	Reason     string
	Details    *string
	ExpiresAt  *time.Time
	CreatedBy  uuid.UUID
	Resolved   bool
	CreatedAt  time.Time
}

type VerificationRequestStatus string

const (
	VerificationRequestPending  VerificationRequestStatus = "pending"
	VerificationRequestApproved VerificationRequestStatus = "approved"
	VerificationRequestRejected VerificationRequestStatus = "rejected"
)

type VerificationRequest struct {
	Id             uuid.UUID
	RescueId       uuid.UUID
	EIN            *string
	Details        *string
	Status         VerificationRequestStatus
	ReviewerUserId *uuid.UUID
	ReviewedAt     *time.Time
	CreatedAt      time.Time
}
