package contract

import (
	"context"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type AbuseReportRepository interface {
	Create(ctx context.Context, report *entity.AbuseReport) error
	Update(ctx context.Context, report *entity.AbuseReport) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AbuseReport, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AbuseReport, error)
}

// ModerationActionRepository is append-only: actions record operator
// decisions and are never updated or deleted.
type ModerationActionRepository interface {
	Create(ctx context.Context, action *entity.ModerationAction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ModerationAction, error)
}

type VerificationRequestRepository interface {
	Create(ctx context.Context, request *entity.VerificationRequest) error
	Update(ctx context.Context, request *entity.VerificationRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VerificationRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRequest, error)
}
