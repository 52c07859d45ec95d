package implementation

import (
	"context"
	"errors"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/mapper"
	"rescueos-be/internal/model"
	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/scope"
	"rescueos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InquiryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB) contract.InquiryRepository {
	return &InquiryRepositoryImpl{
		db:     db,
		mapper: mapper.NewInquiryMapper(),
	}
}

func (r *InquiryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	m := r.mapper.ToModel(inquiry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*inquiry = *r.mapper.ToEntity(m)
	return nil
}

func (r *InquiryRepositoryImpl) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	m := r.mapper.ToModel(inquiry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*inquiry = *r.mapper.ToEntity(m)
	return nil
}

func (r *InquiryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Inquiry, error) {
	var m model.Inquiry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InquiryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Inquiry, error) {
	var models []*model.Inquiry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InquiryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Inquiry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type InquiryEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InquiryMapper
}

func NewInquiryEventRepository(db *gorm.DB) contract.InquiryEventRepository {
	return &InquiryEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewInquiryMapper(),
	}
}

func (r *InquiryEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InquiryEventRepositoryImpl) Create(ctx context.Context, event *entity.InquiryEvent) error {
	m := r.mapper.EventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.EventToEntity(m)
	return nil
}

func (r *InquiryEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryEvent, error) {
	var models []*model.InquiryEvent
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.EventsToEntities(models), nil
}

type InquiryNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InquiryMapper
}

func NewInquiryNoteRepository(db *gorm.DB) contract.InquiryNoteRepository {
	return &InquiryNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewInquiryMapper(),
	}
}

func (r *InquiryNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InquiryNoteRepositoryImpl) Create(ctx context.Context, note *entity.InquiryNote) error {
	m := r.mapper.NoteToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.NoteToEntity(m)
	return nil
}

func (r *InquiryNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryNote, error) {
	var models []*model.InquiryNote
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.NotesToEntities(models), nil
}
