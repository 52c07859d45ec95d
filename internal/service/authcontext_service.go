package service

import (
	"context"
	"fmt"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAuthContextService interface {
	// Resolve loads the caller's rescue and role. No membership resolves to
	// an empty context, which the controllers treat as "go to onboarding".
	Resolve(ctx context.Context, userId uuid.UUID) (*entity.AuthContext, error)
}

type authContextService struct {
	uowFactory unitofwork.RepositoryFactory
	// elevatedFactory runs on the service connection and is the fallback
	// when the caller-scoped rescue read fails mid-flight.
	elevatedFactory unitofwork.RepositoryFactory
	logger          logger.ILogger
}

func NewAuthContextService(
	uowFactory unitofwork.RepositoryFactory,
	elevatedFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IAuthContextService {
	return &authContextService{
		uowFactory:      uowFactory,
		elevatedFactory: elevatedFactory,
		logger:          log,
	}
}

func (s *authContextService) Resolve(ctx context.Context, userId uuid.UUID) (*entity.AuthContext, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Most-recent membership wins when the user belongs to several rescues.
	membership, err := uow.MembershipRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if membership == nil {
		return &entity.AuthContext{}, nil
	}

	rescue, err := uow.RescueRepository().FindOne(ctx, specification.ByID{ID: membership.RescueId})
	if err != nil || rescue == nil {
		// Retry once through the elevated handle before giving up.
		s.logger.Warn("authcontext", "rescue fetch failed, retrying elevated", map[string]interface{}{
			"user_id":   userId.String(),
			"rescue_id": membership.RescueId.String(),
		})
		elevated := s.elevatedFactory.NewUnitOfWork(ctx)
		rescue, err = elevated.RescueRepository().FindOne(ctx, specification.ByID{ID: membership.RescueId})
		if err != nil {
			return nil, fmt.Errorf("failed to load rescue: %w", err)
		}
	}
	if rescue == nil {
		return &entity.AuthContext{}, nil
	}

	return &entity.AuthContext{
		Rescue: rescue,
		Role:   membership.Role,
	}, nil
}
