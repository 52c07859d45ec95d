package mapper

import (
	"time"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
)

type InquiryMapper struct{}

func NewInquiryMapper() *InquiryMapper {
	return &InquiryMapper{}
}

func (m *InquiryMapper) ToEntity(i *model.Inquiry) *entity.Inquiry {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Inquiry{
		Id:               i.Id,
		RescueId:         i.RescueId,
		AnimalId:         i.AnimalId,
		AdopterName:      i.AdopterName,
		AdopterEmail:     i.AdopterEmail,
		Message:          i.Message,
		Status:           entity.InquiryStatus(i.Status),
		AssignedTo:       i.AssignedTo,
		FirstRespondedAt: i.FirstRespondedAt,
		Archived:         i.Archived,
		ArchivedAt:       i.ArchivedAt,
		ArchivedBy:       i.ArchivedBy,
		TrackingToken:    i.TrackingToken,
		TokenExpiresAt:   i.TokenExpiresAt,
		TokenRevokedAt:   i.TokenRevokedAt,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *InquiryMapper) ToModel(i *entity.Inquiry) *model.Inquiry {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Inquiry{
		Id:               i.Id,
		RescueId:         i.RescueId,
		AnimalId:         i.AnimalId,
		AdopterName:      i.AdopterName,
		AdopterEmail:     i.AdopterEmail,
		Message:          i.Message,
		Status:           string(i.Status),
		AssignedTo:       i.AssignedTo,
		FirstRespondedAt: i.FirstRespondedAt,
		Archived:         i.Archived,
		ArchivedAt:       i.ArchivedAt,
		ArchivedBy:       i.ArchivedBy,
		TrackingToken:    i.TrackingToken,
		TokenExpiresAt:   i.TokenExpiresAt,
		TokenRevokedAt:   i.TokenRevokedAt,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *InquiryMapper) ToEntities(inquiries []*model.Inquiry) []*entity.Inquiry {
	entities := make([]*entity.Inquiry, len(inquiries))
	for i, q := range inquiries {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func (m *InquiryMapper) EventToEntity(e *model.InquiryEvent) *entity.InquiryEvent {
	if e == nil {
		return nil
	}
	return &entity.InquiryEvent{
		Id:        e.Id,
		InquiryId: e.InquiryId,
		EventType: entity.InquiryEventType(e.EventType),
		FromValue: e.FromValue,
		ToValue:   e.ToValue,
		Body:      e.Body,
		ActorId:   e.ActorId,
		CreatedAt: e.CreatedAt,
	}
}

func (m *InquiryMapper) EventToModel(e *entity.InquiryEvent) *model.InquiryEvent {
	if e == nil {
		return nil
	}
	return &model.InquiryEvent{
		Id:        e.Id,
		InquiryId: e.InquiryId,
		EventType: string(e.EventType),
		FromValue: e.FromValue,
		ToValue:   e.ToValue,
		Body:      e.Body,
		ActorId:   e.ActorId,
		CreatedAt: e.CreatedAt,
	}
}

func (m *InquiryMapper) EventsToEntities(events []*model.InquiryEvent) []*entity.InquiryEvent {
	entities := make([]*entity.InquiryEvent, len(events))
	for i, e := range events {
		entities[i] = m.EventToEntity(e)
	}
	return entities
}

func (m *InquiryMapper) NoteToEntity(n *model.InquiryNote) *entity.InquiryNote {
	if n == nil {
		return nil
	}
	return &entity.InquiryNote{
		Id:        n.Id,
		InquiryId: n.InquiryId,
		AuthorId:  n.AuthorId,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

func (m *InquiryMapper) NoteToModel(n *entity.InquiryNote) *model.InquiryNote {
	if n == nil {
		return nil
	}
	return &model.InquiryNote{
		Id:        n.Id,
		InquiryId: n.InquiryId,
		AuthorId:  n.AuthorId,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

func (m *InquiryMapper) NotesToEntities(notes []*model.InquiryNote) []*entity.InquiryNote {
	entities := make([]*entity.InquiryNote, len(notes))
	for i, n := range notes {
		entities[i] = m.NoteToEntity(n)
	}
	return entities
}
