package mapper

import (
	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
)

type ModerationMapper struct{}

func NewModerationMapper() *ModerationMapper {
	return &ModerationMapper{}
}

func (m *ModerationMapper) ReportToEntity(r *model.AbuseReport) *entity.AbuseReport {
	if r == nil {
		return nil
	}

	var outcome *entity.ReportOutcome
	if r.Outcome != nil {
		o := entity.ReportOutcome(*r.Outcome)
		outcome = &o
	}

	return &entity.AbuseReport{
		Id:              r.Id,
		RescueId:        r.RescueId,
		AnimalId:        r.AnimalId,
		InquiryId:       r.InquiryId,
		ReporterEmail:   r.ReporterEmail,
		Reason:          r.Reason,
		Status:          entity.ReportStatus(r.Status),
		Outcome:         outcome,
		ResolutionNotes: r.ResolutionNotes,
		ResolvedAt:      r.ResolvedAt,
		ResolvedBy:      r.ResolvedBy,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ModerationMapper) ReportToModel(r *entity.AbuseReport) *model.AbuseReport {
	if r == nil {
		return nil
	}

	var outcome *string
	if r.Outcome != nil {
		o := string(*r.Outcome)
		outcome = &o
	}

	return &model.AbuseReport{
		Id:              r.Id,
		RescueId:        r.RescueId,
		AnimalId:        r.AnimalId,
		InquiryId:       r.InquiryId,
		ReporterEmail:   r.ReporterEmail,
		Reason:          r.Reason,
		Status:          string(r.Status),
		Outcome:         outcome,
		ResolutionNotes: r.ResolutionNotes,
		ResolvedAt:      r.ResolvedAt,
		ResolvedBy:      r.ResolvedBy,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ModerationMapper) ReportsToEntities(reports []*model.AbuseReport) []*entity.AbuseReport {
	entities := make([]*entity.AbuseReport, len(reports))
	for i, r := range reports {
		entities[i] = m.ReportToEntity(r)
	}
	return entities
}

func (m *ModerationMapper) ActionToEntity(a *model.ModerationAction) *entity.ModerationAction {
	if a == nil {
		return nil
	}
	return &entity.ModerationAction{
		Id:         a.Id,
		RescueId:   a.RescueId,
		AnimalId:   a.AnimalId,
		InquiryId:  a.InquiryId,
		ReportId:   a.ReportId,
		ActionType: entity.ModerationActionType(a.ActionType),
		Reason:     a.Reason,
		Details:    a.Details,
		ExpiresAt:  a.ExpiresAt,
		CreatedBy:  a.CreatedBy,
		Resolved:   a.Resolved,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ModerationMapper) ActionToModel(a *entity.ModerationAction) *model.ModerationAction {
	if a == nil {
		return nil
	}
	return &model.ModerationAction{
		Id:         a.Id,
		RescueId:   a.RescueId,
		AnimalId:   a.AnimalId,
		InquiryId:  a.InquiryId,
		ReportId:   a.ReportId,
		ActionType: string(a.ActionType),
		Reason:     a.Reason,
		Details:    a.Details,
		ExpiresAt:  a.ExpiresAt,
		CreatedBy:  a.CreatedBy,
		Resolved:   a.Resolved,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ModerationMapper) ActionsToEntities(actions []*model.ModerationAction) []*entity.ModerationAction {
	entities := make([]*entity.ModerationAction, len(actions))
	for i, a := range actions {
		entities[i] = m.ActionToEntity(a)
	}
	return entities
}

func (m *ModerationMapper) VerificationToEntity(v *model.VerificationRequest) *entity.VerificationRequest {
	if v == nil {
		return nil
	}
	return &entity.VerificationRequest{
		Id:             v.Id,
		RescueId:       v.RescueId,
		EIN:            v.EIN,
		Details:        v.Details,
		Status:         entity.VerificationRequestStatus(v.Status),
		ReviewerUserId: v.ReviewerUserId,
		ReviewedAt:     v.ReviewedAt,
		CreatedAt:      v.CreatedAt,
	}
}

func (m *ModerationMapper) VerificationToModel(v *entity.VerificationRequest) *model.VerificationRequest {
	if v == nil {
		return nil
	}
	return &model.VerificationRequest{
		Id:             v.Id,
		RescueId:       v.RescueId,
		EIN:            v.EIN,
		Details:        v.Details,
		Status:         string(v.Status),
		ReviewerUserId: v.ReviewerUserId,
		ReviewedAt:     v.ReviewedAt,
		CreatedAt:      v.CreatedAt,
	}
}

func (m *ModerationMapper) VerificationsToEntities(requests []*model.VerificationRequest) []*entity.VerificationRequest {
	entities := make([]*entity.VerificationRequest, len(requests))
	for i, v := range requests {
		entities[i] = m.VerificationToEntity(v)
	}
	return entities
}
