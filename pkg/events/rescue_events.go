package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes. The bus subject is the type with the "rescue." prefix.
const (
	TypeInquiryCreated       = "inquiry.created"
	TypeInquiryStatusChanged = "inquiry.status_changed"
	TypeInvitationIssued     = "invitation.issued"
	TypeReplyRequested       = "reply.requested"
)

// NewInquiryCreated fires when an adopter submits a public inquiry. The
// dispatcher sends the adopter confirmation and the rescue alert from it.
func NewInquiryCreated(inquiryId, animalId, rescueId uuid.UUID, adopterName, adopterEmail, animalName string) Event {
	return BaseEvent{
		Type: TypeInquiryCreated,
		Data: map[string]interface{}{
			"inquiry_id":    inquiryId.String(),
			"animal_id":     animalId.String(),
			"rescue_id":     rescueId.String(),
			"adopter_name":  adopterName,
			"adopter_email": adopterEmail,
			"animal_name":   animalName,
		},
		OccurredAt: time.Now(),
	}
}

func NewInquiryStatusChanged(inquiryId, rescueId uuid.UUID, adopterEmail, animalName, fromStatus, toStatus string) Event {
	return BaseEvent{
		Type: TypeInquiryStatusChanged,
		Data: map[string]interface{}{
			"inquiry_id":    inquiryId.String(),
			"rescue_id":     rescueId.String(),
			"adopter_email": adopterEmail,
			"animal_name":   animalName,
			"from_status":   fromStatus,
			"to_status":     toStatus,
		},
		OccurredAt: time.Now(),
	}
}

func NewInvitationIssued(invitationId, rescueId uuid.UUID, email, role, token, rescueName string) Event {
	return BaseEvent{
		Type: TypeInvitationIssued,
		Data: map[string]interface{}{
			"invitation_id": invitationId.String(),
			"rescue_id":     rescueId.String(),
			"email":         email,
			"role":          role,
			"token":         token,
			"rescue_name":   rescueName,
		},
		OccurredAt: time.Now(),
	}
}

// NewReplyRequested fires when staff send a saved reply from the inquiry
// drawer. The dispatcher renders and delivers it off the request path.
func NewReplyRequested(inquiryId, templateId, rescueId, actorId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeReplyRequested,
		Data: map[string]interface{}{
			"inquiry_id":  inquiryId.String(),
			"template_id": templateId.String(),
			"rescue_id":   rescueId.String(),
			"actor_id":    actorId.String(),
		},
		OccurredAt: time.Now(),
	}
}
