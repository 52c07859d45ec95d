package contract

import (
	"context"

	"github.com/google/uuid"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	Update(ctx context.Context, animal *entity.Animal) error
	// UpdateFields applies a partial column update to every animal matched by
	// the specs. Bulk archive/activate/status run through this.
	UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Animal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Animal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// InquiryCounts returns the inquiry aggregate per animal id.
	InquiryCounts(ctx context.Context, animalIds []uuid.UUID) (map[uuid.UUID]int64, error)
}

type AnimalPhotoRepository interface {
	Create(ctx context.Context, photo *entity.AnimalPhoto) error
	UpdateSortOrder(ctx context.Context, photoId uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, photoId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnimalPhoto, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnimalPhoto, error)
}

type StageEventRepository interface {
	Create(ctx context.Context, event *entity.StageEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageEvent, error)
}
