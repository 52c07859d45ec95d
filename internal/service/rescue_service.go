package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRescueService interface {
	Onboard(ctx context.Context, userId uuid.UUID, req *dto.OnboardRescueRequest) (*dto.RescueResponse, error)
	UpdateSettings(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateRescueSettingsRequest) (*dto.RescueResponse, error)
	RequestVerification(ctx context.Context, authCtx *entity.AuthContext, req *dto.RequestVerificationRequest) error
	PublicPage(ctx context.Context, slug string) (*dto.PublicRescueResponse, error)
}

type rescueService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRescueService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IRescueService {
	return &rescueService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

const slugAttempts = 5

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Onboard creates the rescue and its owner membership in one transaction.
// Slug collisions retry with a short uuid suffix.
func (s *rescueService) Onboard(ctx context.Context, userId uuid.UUID, req *dto.OnboardRescueRequest) (*dto.RescueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.MembershipRepository().FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, apperr.Validation("user already belongs to a rescue")
	}

	base := slugify(req.Name)
	if base == "" {
		base = "rescue"
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	var rescue *entity.Rescue
	slug := base
	for attempt := 0; attempt < slugAttempts; attempt++ {
		taken, err := uow.RescueRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken == nil {
			rescue = &entity.Rescue{
				Id:                 uuid.New(),
				Name:               req.Name,
				Slug:               slug,
				ContactEmail:       strings.ToLower(req.ContactEmail),
				OwnerUserId:        userId,
				IsPublic:           req.IsPublic,
				PlanTier:           entity.PlanTierFree,
				VerificationStatus: entity.VerificationUnverified,
				CreatedAt:          time.Now(),
			}
			break
		}
		slug = fmt.Sprintf("%s-%s", base, uuid.NewString()[:4])
	}
	if rescue == nil {
		return nil, apperr.Validation("could not find a free slug for this rescue name")
	}

	if err := uow.RescueRepository().Create(ctx, rescue); err != nil {
		return nil, fmt.Errorf("failed to create rescue: %w", err)
	}

	membership := entity.Membership{
		RescueId:  rescue.Id,
		UserId:    userId,
		Role:      entity.RoleOwner,
		CreatedAt: time.Now(),
	}
	if err := uow.MembershipRepository().Upsert(ctx, &membership); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit onboarding: %w", err)
	}

	s.logger.Info("rescue", "rescue onboarded", map[string]interface{}{
		"rescue_id": rescue.Id.String(),
		"slug":      rescue.Slug,
	})

	return rescueToResponse(rescue), nil
}

func (s *rescueService) UpdateSettings(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateRescueSettingsRequest) (*dto.RescueResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if authCtx.Role != entity.RoleOwner && authCtx.Role != entity.RoleAdmin {
		return nil, apperr.Forbidden("only owners and admins can change settings")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rescue, err := uow.RescueRepository().FindOne(ctx, specification.ByID{ID: authCtx.Rescue.Id})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil {
		return nil, apperr.NotFound("rescue not found")
	}

	rescue.Name = req.Name
	rescue.ContactEmail = strings.ToLower(req.ContactEmail)
	rescue.IsPublic = req.IsPublic
	if err := uow.RescueRepository().Update(ctx, rescue); err != nil {
		return nil, fmt.Errorf("failed to update rescue: %w", err)
	}

	return rescueToResponse(rescue), nil
}

func (s *rescueService) RequestVerification(ctx context.Context, authCtx *entity.AuthContext, req *dto.RequestVerificationRequest) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}
	if authCtx.Role != entity.RoleOwner {
		return apperr.Forbidden("only the owner can request verification")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.VerificationRequestRepository().FindOne(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.Filter("status", string(entity.VerificationRequestPending)),
	)
	if err != nil {
		return fmt.Errorf("failed to check pending verification: %w", err)
	}
	if pending != nil {
		return apperr.Validation("a verification request is already pending")
	}

	request := entity.VerificationRequest{
		Id:        uuid.New(),
		RescueId:  authCtx.Rescue.Id,
		Status:    entity.VerificationRequestPending,
		CreatedAt: time.Now(),
	}
	if req.EIN != "" {
		ein := req.EIN
		request.EIN = &ein
	}
	if req.Details != "" {
		details := req.Details
		request.Details = &details
	}

	if err := uow.VerificationRequestRepository().Create(ctx, &request); err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}
	return nil
}

// PublicPage resolves a rescue for the unauthenticated adoption site. Hidden
// and disabled rescues read as not found.
func (s *rescueService) PublicPage(ctx context.Context, slug string) (*dto.PublicRescueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rescue, err := uow.RescueRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil || !rescue.IsPublic || rescue.Disabled {
		return nil, apperr.NotFound("rescue not found")
	}

	return &dto.PublicRescueResponse{
		Name:               rescue.Name,
		Slug:               rescue.Slug,
		VerificationStatus: string(rescue.VerificationStatus),
	}, nil
}

func rescueToResponse(r *entity.Rescue) *dto.RescueResponse {
	return &dto.RescueResponse{
		Id:                 r.Id,
		Name:               r.Name,
		Slug:               r.Slug,
		ContactEmail:       r.ContactEmail,
		IsPublic:           r.IsPublic,
		Disabled:           r.Disabled,
		PlanTier:           string(r.PlanTier),
		SubscriptionStatus: r.SubscriptionStatus,
		CurrentPeriodEnd:   r.CurrentPeriodEnd,
		VerificationStatus: string(r.VerificationStatus),
		CreatedAt:          r.CreatedAt,
	}
}
