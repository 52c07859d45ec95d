package contract

import (
	"context"

	"github.com/google/uuid"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type EmailLogRepository interface {
	Create(ctx context.Context, log *entity.EmailLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.SavedReplyTemplate) error
	Update(ctx context.Context, template *entity.SavedReplyTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedReplyTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedReplyTemplate, error)
}
