package model

import (
	"time"

	"github.com/google/uuid"
)

type EmailLog struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId  *uuid.UUID `gorm:"type:uuid;index"`
	InquiryId *uuid.UUID `gorm:"type:uuid;index"`
	Recipient string     `gorm:"type:varchar(255);not null"`
	Subject   string     `gorm:"type:varchar(255);not null"`
	SendType  string     `gorm:"type:varchar(40);not null"`
	Status    string     `gorm:"type:varchar(20);not null"`
	ErrorText *string    `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}

type SavedReplyTemplate struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SavedReplyTemplate) TableName() string {
	return "saved_reply_templates"
}
