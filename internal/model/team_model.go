package model

import (
	"time"

	"github.com/google/uuid"
)

type RescueMember struct {
	RescueId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RescueMember) TableName() string {
	return "rescue_members"
}

type RescueInvitation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Token      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	AcceptedAt *time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (RescueInvitation) TableName() string {
	return "rescue_invitations"
}
