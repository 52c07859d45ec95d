package mapper

import (
	"time"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
)

type RescueMapper struct{}

func NewRescueMapper() *RescueMapper {
	return &RescueMapper{}
}

func (m *RescueMapper) ToEntity(r *model.Rescue) *entity.Rescue {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Rescue{
		Id:                 r.Id,
		Name:               r.Name,
		Slug:               r.Slug,
		ContactEmail:       r.ContactEmail,
		OwnerUserId:        r.OwnerUserId,
		IsPublic:           r.IsPublic,
		Disabled:           r.Disabled,
		DisabledAt:         r.DisabledAt,
		PlanTier:           entity.PlanTier(r.PlanTier),
		SubscriptionStatus: r.SubscriptionStatus,
		CurrentPeriodEnd:   r.CurrentPeriodEnd,
		VerificationStatus: entity.VerificationStatus(r.VerificationStatus),
		VerifiedAt:         r.VerifiedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *RescueMapper) ToModel(r *entity.Rescue) *model.Rescue {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Rescue{
		Id:                 r.Id,
		Name:               r.Name,
		Slug:               r.Slug,
		ContactEmail:       r.ContactEmail,
		OwnerUserId:        r.OwnerUserId,
		IsPublic:           r.IsPublic,
		Disabled:           r.Disabled,
		DisabledAt:         r.DisabledAt,
		PlanTier:           string(r.PlanTier),
		SubscriptionStatus: r.SubscriptionStatus,
		CurrentPeriodEnd:   r.CurrentPeriodEnd,
		VerificationStatus: string(r.VerificationStatus),
		VerifiedAt:         r.VerifiedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *RescueMapper) ToEntities(rescues []*model.Rescue) []*entity.Rescue {
	entities := make([]*entity.Rescue, len(rescues))
	for i, r := range rescues {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:           p.Id,
		Email:        p.Email,
		DisplayName:  p.DisplayName,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:           p.Id,
		Email:        p.Email,
		DisplayName:  p.DisplayName,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
