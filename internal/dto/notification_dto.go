package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Subject string `json:"subject" validate:"required,min=2,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=10000"`
}

type UpdateTemplateRequest struct {
	Id      uuid.UUID
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Subject string `json:"subject" validate:"required,min=2,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=10000"`
}

type TemplateResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SendTemplateRequest fires a saved reply at the adopter behind an inquiry.
type SendTemplateRequest struct {
	InquiryId  uuid.UUID `json:"inquiry_id" validate:"required"`
	TemplateId uuid.UUID `json:"template_id" validate:"required"`
}

type EmailLogResponse struct {
	Id        uuid.UUID  `json:"id"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	SendType  string     `json:"send_type"`
	Status    string     `json:"status"`
	ErrorText *string    `json:"error_text,omitempty"`
	InquiryId *uuid.UUID `json:"inquiry_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
