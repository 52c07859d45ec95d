package mapper

import (
	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) MemberToEntity(r *model.RescueMember) *entity.Membership {
	if r == nil {
		return nil
	}
	return &entity.Membership{
		RescueId:  r.RescueId,
		UserId:    r.UserId,
		Role:      entity.MemberRole(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

func (m *TeamMapper) MemberToModel(r *entity.Membership) *model.RescueMember {
	if r == nil {
		return nil
	}
	return &model.RescueMember{
		RescueId:  r.RescueId,
		UserId:    r.UserId,
		Role:      string(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

func (m *TeamMapper) MembersToEntities(members []*model.RescueMember) []*entity.Membership {
	entities := make([]*entity.Membership, len(members))
	for i, r := range members {
		entities[i] = m.MemberToEntity(r)
	}
	return entities
}

func (m *TeamMapper) InvitationToEntity(r *model.RescueInvitation) *entity.Invitation {
	if r == nil {
		return nil
	}
	return &entity.Invitation{
		Id:         r.Id,
		RescueId:   r.RescueId,
		Email:      r.Email,
		Role:       entity.MemberRole(r.Role),
		Token:      r.Token,
		CreatedBy:  r.CreatedBy,
		ExpiresAt:  r.ExpiresAt,
		AcceptedAt: r.AcceptedAt,
		CanceledAt: r.CanceledAt,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *TeamMapper) InvitationToModel(r *entity.Invitation) *model.RescueInvitation {
	if r == nil {
		return nil
	}
	return &model.RescueInvitation{
		Id:         r.Id,
		RescueId:   r.RescueId,
		Email:      r.Email,
		Role:       string(r.Role),
		Token:      r.Token,
		CreatedBy:  r.CreatedBy,
		ExpiresAt:  r.ExpiresAt,
		AcceptedAt: r.AcceptedAt,
		CanceledAt: r.CanceledAt,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *TeamMapper) InvitationsToEntities(invites []*model.RescueInvitation) []*entity.Invitation {
	entities := make([]*entity.Invitation, len(invites))
	for i, r := range invites {
		entities[i] = m.InvitationToEntity(r)
	}
	return entities
}
