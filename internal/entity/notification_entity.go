package entity

import (
	"time"

	"github.com/google/uuid"
)

type EmailSendStatus string

const (
	EmailSent    EmailSendStatus = "sent"
	EmailFailed  EmailSendStatus = "failed"
	EmailSkipped EmailSendStatus = "skipped"
)

type EmailSendType string

const (
	SendTypeAdopterConfirmation EmailSendType = "adopter_confirmation"
	SendTypeRescueAlert         EmailSendType = "rescue_alert"
	SendTypeInvite              EmailSendType = "invite"
	SendTypeTemplateReply       EmailSendType = "template_reply"
)

// EmailLog records every dispatch attempt, successful or not.
type EmailLog struct {
	Id        uuid.UUID
	RescueId  *uuid.UUID
	InquiryId *uuid.UUID
	Recipient string
	Subject   string
	SendType  EmailSendType
	Status    EmailSendStatus
	ErrorText *string
	CreatedAt time.Time
}

// SavedReplyTemplate is reusable email content scoped to one rescue.
type SavedReplyTemplate struct {
	Id        uuid.UUID
	RescueId  uuid.UUID
	Name      string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
