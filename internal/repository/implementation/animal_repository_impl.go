package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/mapper"
	"rescueos-be/internal/model"
	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/scope"
	"rescueos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AnimalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnimalMapper
}

func NewAnimalRepository(db *gorm.DB) contract.AnimalRepository {
	return &AnimalRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnimalMapper(),
	}
}

func (r *AnimalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnimalRepositoryImpl) Create(ctx context.Context, animal *entity.Animal) error {
	m := r.mapper.ToModel(animal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*animal = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnimalRepositoryImpl) Update(ctx context.Context, animal *entity.Animal) error {
	m := r.mapper.ToModel(animal)
	if err := r.db.WithContext(ctx).Omit("Photos").Save(m).Error; err != nil {
		return err
	}
	*animal = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnimalRepositoryImpl) UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Animal{}), specs...)
	result := query.Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *AnimalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Animal, error) {
	var m model.Animal
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnimalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Animal, error) {
	var models []*model.Animal
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnimalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Animal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AnimalRepositoryImpl) InquiryCounts(ctx context.Context, animalIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(animalIds))
	if len(animalIds) == 0 {
		return counts, nil
	}
	var rows []struct {
		AnimalId uuid.UUID
		Total    int64
	}
	err := r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Select("animal_id, COUNT(*) AS total").
		Where("animal_id IN ?", animalIds).
		Group("animal_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AnimalId] = row.Total
	}
	return counts, nil
}

type AnimalPhotoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnimalMapper
}

func NewAnimalPhotoRepository(db *gorm.DB) contract.AnimalPhotoRepository {
	return &AnimalPhotoRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnimalMapper(),
	}
}

func (r *AnimalPhotoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnimalPhotoRepositoryImpl) Create(ctx context.Context, photo *entity.AnimalPhoto) error {
	m := r.mapper.PhotoToModel(photo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*photo = *r.mapper.PhotoToEntity(m)
	return nil
}

func (r *AnimalPhotoRepositoryImpl) UpdateSortOrder(ctx context.Context, photoId uuid.UUID, sortOrder int) error {
	return r.db.WithContext(ctx).Model(&model.AnimalPhoto{}).
		Where("id = ?", photoId).
		Update("sort_order", sortOrder).Error
}

func (r *AnimalPhotoRepositoryImpl) Delete(ctx context.Context, photoId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", photoId).Delete(&model.AnimalPhoto{}).Error
}

func (r *AnimalPhotoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnimalPhoto, error) {
	var m model.AnimalPhoto
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PhotoToEntity(&m), nil
}

func (r *AnimalPhotoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnimalPhoto, error) {
	var models []*model.AnimalPhoto
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PhotosToEntities(models), nil
}

type StageEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnimalMapper
}

func NewStageEventRepository(db *gorm.DB) contract.StageEventRepository {
	return &StageEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnimalMapper(),
	}
}

func (r *StageEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StageEventRepositoryImpl) Create(ctx context.Context, event *entity.StageEvent) error {
	m := r.mapper.StageEventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.StageEventToEntity(m)
	return nil
}

func (r *StageEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageEvent, error) {
	var models []*model.AnimalStageEvent
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.StageEventsToEntities(models), nil
}
