package implementation

import (
	"context"
	"errors"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/mapper"
	"rescueos-be/internal/model"
	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AbuseReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModerationMapper
}

func NewAbuseReportRepository(db *gorm.DB) contract.AbuseReportRepository {
	return &AbuseReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewModerationMapper(),
	}
}

func (r *AbuseReportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AbuseReportRepositoryImpl) Create(ctx context.Context, report *entity.AbuseReport) error {
	m := r.mapper.ReportToModel(report)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ReportToEntity(m)
	return nil
}

func (r *AbuseReportRepositoryImpl) Update(ctx context.Context, report *entity.AbuseReport) error {
	m := r.mapper.ReportToModel(report)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ReportToEntity(m)
	return nil
}

func (r *AbuseReportRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AbuseReport, error) {
	var m model.AbuseReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ReportToEntity(&m), nil
}

func (r *AbuseReportRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AbuseReport, error) {
	var models []*model.AbuseReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ReportsToEntities(models), nil
}

type ModerationActionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModerationMapper
}

func NewModerationActionRepository(db *gorm.DB) contract.ModerationActionRepository {
	return &ModerationActionRepositoryImpl{
		db:     db,
		mapper: mapper.NewModerationMapper(),
	}
}

func (r *ModerationActionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ModerationActionRepositoryImpl) Create(ctx context.Context, action *entity.ModerationAction) error {
	m := r.mapper.ActionToModel(action)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*action = *r.mapper.ActionToEntity(m)
	return nil
}

func (r *ModerationActionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ModerationAction, error) {
	var models []*model.ModerationAction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ActionsToEntities(models), nil
}

type VerificationRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModerationMapper
}

func NewVerificationRequestRepository(db *gorm.DB) contract.VerificationRequestRepository {
	return &VerificationRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewModerationMapper(),
	}
}

func (r *VerificationRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VerificationRequestRepositoryImpl) Create(ctx context.Context, request *entity.VerificationRequest) error {
	m := r.mapper.VerificationToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.VerificationToEntity(m)
	return nil
}

func (r *VerificationRequestRepositoryImpl) Update(ctx context.Context, request *entity.VerificationRequest) error {
	m := r.mapper.VerificationToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.VerificationToEntity(m)
	return nil
}

func (r *VerificationRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VerificationRequest, error) {
	var m model.VerificationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VerificationToEntity(&m), nil
}

func (r *VerificationRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRequest, error) {
	var models []*model.VerificationRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.VerificationsToEntities(models), nil
}
