package model

import (
	"time"

	"github.com/google/uuid"
)

type AbuseReport struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	AnimalId        *uuid.UUID `gorm:"type:uuid"`
	InquiryId       *uuid.UUID `gorm:"type:uuid"`
	ReporterEmail   string     `gorm:"type:varchar(255);not null"`
	Reason          string     `gorm:"type:text;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'open';index"`
	Outcome         *string    `gorm:"type:varchar(20)"`
	ResolutionNotes *string    `gorm:"type:text"`
	ResolvedAt      *time.Time
	ResolvedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}

func (AbuseReport) TableName() string {
	return "abuse_reports"
}

type ModerationAction struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AnimalId   *uuid.UUID `gorm:"type:uuid"`
	InquiryId  *uuid.UUID `gorm:"type:uuid"`
	ReportId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActionType string     `gorm:"type:varchar(20);not null"`
	Reason     string     `gorm:"type:text;not null"`
	Details    *string    `gorm:"type:text"`
	ExpiresAt  *time.Time
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	Resolved   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ModerationAction) TableName() string {
	return "moderation_actions"
}

type VerificationRequest struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId       uuid.UUID `gorm:"type:uuid;not null;index"`
	EIN            *string   `gorm:"type:varchar(20)"`
	Details        *string   `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ReviewerUserId *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (VerificationRequest) TableName() string {
	return "verification_requests"
}
