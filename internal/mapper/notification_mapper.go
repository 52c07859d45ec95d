package mapper

import (
	"time"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) EmailLogToEntity(l *model.EmailLog) *entity.EmailLog {
	if l == nil {
		return nil
	}
	return &entity.EmailLog{
		Id:        l.Id,
		RescueId:  l.RescueId,
		InquiryId: l.InquiryId,
		Recipient: l.Recipient,
		Subject:   l.Subject,
		SendType:  entity.EmailSendType(l.SendType),
		Status:    entity.EmailSendStatus(l.Status),
		ErrorText: l.ErrorText,
		CreatedAt: l.CreatedAt,
	}
}

func (m *NotificationMapper) EmailLogToModel(l *entity.EmailLog) *model.EmailLog {
	if l == nil {
		return nil
	}
	return &model.EmailLog{
		Id:        l.Id,
		RescueId:  l.RescueId,
		InquiryId: l.InquiryId,
		Recipient: l.Recipient,
		Subject:   l.Subject,
		SendType:  string(l.SendType),
		Status:    string(l.Status),
		ErrorText: l.ErrorText,
		CreatedAt: l.CreatedAt,
	}
}

func (m *NotificationMapper) EmailLogsToEntities(logs []*model.EmailLog) []*entity.EmailLog {
	entities := make([]*entity.EmailLog, len(logs))
	for i, l := range logs {
		entities[i] = m.EmailLogToEntity(l)
	}
	return entities
}

func (m *NotificationMapper) TemplateToEntity(t *model.SavedReplyTemplate) *entity.SavedReplyTemplate {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.SavedReplyTemplate{
		Id:        t.Id,
		RescueId:  t.RescueId,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NotificationMapper) TemplateToModel(t *entity.SavedReplyTemplate) *model.SavedReplyTemplate {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.SavedReplyTemplate{
		Id:        t.Id,
		RescueId:  t.RescueId,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NotificationMapper) TemplatesToEntities(templates []*model.SavedReplyTemplate) []*entity.SavedReplyTemplate {
	entities := make([]*entity.SavedReplyTemplate, len(templates))
	for i, t := range templates {
		entities[i] = m.TemplateToEntity(t)
	}
	return entities
}
