package contract

import (
	"context"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type RescueRepository interface {
	Create(ctx context.Context, rescue *entity.Rescue) error
	Update(ctx context.Context, rescue *entity.Rescue) error
	// UpdateFields applies a partial column update to every rescue matched by
	// the specs. Billing sync and moderation toggles use this to stay
	// idempotent.
	UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rescue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rescue, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
}
