package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/mapper"
	"rescueos-be/internal/model"
	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewMembershipRepository(db *gorm.DB) contract.MembershipRepository {
	return &MembershipRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *MembershipRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MembershipRepositoryImpl) Upsert(ctx context.Context, membership *entity.Membership) error {
	m := r.mapper.MemberToModel(membership)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rescue_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*membership = *r.mapper.MemberToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) UpdateRole(ctx context.Context, rescueId, userId uuid.UUID, role entity.MemberRole) error {
	return r.db.WithContext(ctx).Model(&model.RescueMember{}).
		Where("rescue_id = ? AND user_id = ?", rescueId, userId).
		Update("role", string(role)).Error
}

func (r *MembershipRepositoryImpl) Delete(ctx context.Context, rescueId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("rescue_id = ? AND user_id = ?", rescueId, userId).
		Delete(&model.RescueMember{}).Error
}

func (r *MembershipRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error) {
	var m model.RescueMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MemberToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error) {
	var models []*model.RescueMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MembersToEntities(models), nil
}

func (r *MembershipRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RescueMember{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type InvitationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewInvitationRepository(db *gorm.DB) contract.InvitationRepository {
	return &InvitationRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *InvitationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvitationRepositoryImpl) Create(ctx context.Context, invitation *entity.Invitation) error {
	m := r.mapper.InvitationToModel(invitation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*invitation = *r.mapper.InvitationToEntity(m)
	return nil
}

func (r *InvitationRepositoryImpl) Update(ctx context.Context, invitation *entity.Invitation) error {
	m := r.mapper.InvitationToModel(invitation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*invitation = *r.mapper.InvitationToEntity(m)
	return nil
}

func (r *InvitationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invitation, error) {
	var m model.RescueInvitation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InvitationToEntity(&m), nil
}

func (r *InvitationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invitation, error) {
	var models []*model.RescueInvitation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InvitationsToEntities(models), nil
}
