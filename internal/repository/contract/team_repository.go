package contract

import (
	"context"

	"github.com/google/uuid"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type MembershipRepository interface {
	// Upsert inserts or replaces the (rescue, user) membership row.
	// Invitation acceptance relies on this being idempotent.
	Upsert(ctx context.Context, membership *entity.Membership) error
	UpdateRole(ctx context.Context, rescueId, userId uuid.UUID, role entity.MemberRole) error
	Delete(ctx context.Context, rescueId, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	Update(ctx context.Context, invitation *entity.Invitation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invitation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invitation, error)
}
