package model

import (
	"time"

	"github.com/google/uuid"
)

type Rescue struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Slug               string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	ContactEmail       string    `gorm:"type:varchar(255);not null"`
	OwnerUserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPublic           bool      `gorm:"not null;default:true"`
	Disabled           bool      `gorm:"not null;default:false"`
	DisabledAt         *time.Time
	PlanTier           string `gorm:"type:varchar(20);not null;default:'free'"`
	SubscriptionStatus *string `gorm:"type:varchar(40)"`
	CurrentPeriodEnd   *time.Time
	VerificationStatus string `gorm:"type:varchar(30);not null;default:'unverified'"`
	VerifiedAt         *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Rescue) TableName() string {
	return "rescues"
}

type Profile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName  string    `gorm:"type:varchar(120)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
