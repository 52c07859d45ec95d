package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanTier string

const (
	PlanTierFree      PlanTier = "free"
	PlanTierSupporter PlanTier = "supporter"
	PlanTierPro       PlanTier = "pro"
)

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	Verification501c3      VerificationStatus = "verified_501c3"
)

// Rescue is a tenant organization. Rescues are disabled, never hard-deleted.
type Rescue struct {
	Id                 uuid.UUID
	Name               string
	Slug               string
	ContactEmail       string
	OwnerUserId        uuid.UUID
	IsPublic           bool
	Disabled           bool
	DisabledAt         *time.Time
	PlanTier           PlanTier
	SubscriptionStatus *string
	CurrentPeriodEnd   *time.Time
	VerificationStatus VerificationStatus
	VerifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Profile is the user account record. Email doubles as the login identity.
type Profile struct {
	Id           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
