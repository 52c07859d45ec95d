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

type RescueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RescueMapper
}

func NewRescueRepository(db *gorm.DB) contract.RescueRepository {
	return &RescueRepositoryImpl{
		db:     db,
		mapper: mapper.NewRescueMapper(),
	}
}

func (r *RescueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RescueRepositoryImpl) Create(ctx context.Context, rescue *entity.Rescue) error {
	m := r.mapper.ToModel(rescue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rescue = *r.mapper.ToEntity(m)
	return nil
}

func (r *RescueRepositoryImpl) Update(ctx context.Context, rescue *entity.Rescue) error {
	m := r.mapper.ToModel(rescue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*rescue = *r.mapper.ToEntity(m)
	return nil
}

func (r *RescueRepositoryImpl) UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Rescue{}), specs...)
	result := query.Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *RescueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rescue, error) {
	var m model.Rescue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RescueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rescue, error) {
	var models []*model.Rescue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RescueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Rescue{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	var models []*model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
