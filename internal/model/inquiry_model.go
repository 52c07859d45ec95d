package model

import (
	"time"

	"github.com/google/uuid"
)

type Inquiry struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId         uuid.UUID `gorm:"type:uuid;not null;index"`
	AnimalId         uuid.UUID `gorm:"type:uuid;not null;index"`
	AdopterName      string    `gorm:"type:varchar(120);not null"`
	AdopterEmail     string    `gorm:"type:varchar(255);not null;index"`
	Message          string    `gorm:"type:text;not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:'new';index"`
	AssignedTo       *uuid.UUID `gorm:"type:uuid;index"`
	FirstRespondedAt *time.Time
	Archived         bool `gorm:"not null;default:false;index"`
	ArchivedAt       *time.Time
	ArchivedBy       *uuid.UUID `gorm:"type:uuid"`
	TrackingToken    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	TokenExpiresAt   *time.Time
	TokenRevokedAt   *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

type InquiryEvent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InquiryId uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType string    `gorm:"type:varchar(30);not null"`
	FromValue *string   `gorm:"type:varchar(120)"`
	ToValue   *string   `gorm:"type:varchar(120)"`
	Body      *string   `gorm:"type:text"`
	ActorId   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (InquiryEvent) TableName() string {
	return "inquiry_events"
}

type InquiryNote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InquiryId uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorId  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (InquiryNote) TableName() string {
	return "inquiry_notes"
}
