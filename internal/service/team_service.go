package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/pkg/events"

	"github.com/google/uuid"
)

const invitationTTL = 7 * 24 * time.Hour

type ITeamService interface {
	CreateInvitation(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.CreateInvitationRequest) (*dto.CreateInvitationResponse, error)
	AcceptInvitation(ctx context.Context, userId uuid.UUID, req *dto.AcceptInvitationRequest) error
	ResendInvitation(ctx context.Context, authCtx *entity.AuthContext, invitationId uuid.UUID) error
	CancelInvitation(ctx context.Context, authCtx *entity.AuthContext, invitationId uuid.UUID) error
	UpdateMemberRole(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateMemberRoleRequest) error
	RemoveMember(ctx context.Context, authCtx *entity.AuthContext, targetUserId uuid.UUID) error
	ListMembers(ctx context.Context, authCtx *entity.AuthContext) ([]dto.MemberResponse, error)
	ListInvitations(ctx context.Context, authCtx *entity.AuthContext) ([]dto.InvitationResponse, error)
}

type teamService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewTeamService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) ITeamService {
	return &teamService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *teamService) CreateInvitation(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.CreateInvitationRequest) (*dto.CreateInvitationResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	role := entity.MemberRole(req.Role)
	if !authCtx.Role.CanManageTarget(role) {
		return nil, apperr.Forbidden("you cannot invite members with this role")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	pending, err := uow.InvitationRepository().FindOne(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ByEmail{Email: email},
		specification.PendingInvitation{},
		specification.UnexpiredAt{Now: time.Now()},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil {
		return nil, apperr.Validation("an invitation for this email is already pending")
	}

	invitation := entity.Invitation{
		Id:        uuid.New(),
		RescueId:  authCtx.Rescue.Id,
		Email:     email,
		Role:      role,
		Token:     uuid.NewString(),
		CreatedBy: actorId,
		ExpiresAt: time.Now().Add(invitationTTL),
		CreatedAt: time.Now(),
	}
	if err := uow.InvitationRepository().Create(ctx, &invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.publisher.Publish(ctx, events.NewInvitationIssued(
		invitation.Id, invitation.RescueId, invitation.Email,
		string(invitation.Role), invitation.Token, authCtx.Rescue.Name,
	))

	return &dto.CreateInvitationResponse{
		Id:    invitation.Id,
		Token: invitation.Token,
	}, nil
}

// AcceptInvitation is single-use. Every failure mode reads the same to the
// caller so tokens cannot be probed.
func (s *teamService) AcceptInvitation(ctx context.Context, userId uuid.UUID, req *dto.AcceptInvitationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invitation, err := uow.InvitationRepository().FindOne(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return fmt.Errorf("failed to load invitation: %w", err)
	}
	if invitation == nil || !invitation.Consumable(time.Now()) {
		return apperr.Validation("invitation is invalid or expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	now := time.Now()
	invitation.AcceptedAt = &now
	if err := uow.InvitationRepository().Update(ctx, invitation); err != nil {
		return fmt.Errorf("failed to consume invitation: %w", err)
	}

	membership := entity.Membership{
		RescueId:  invitation.RescueId,
		UserId:    userId,
		Role:      invitation.Role,
		CreatedAt: now,
	}
	if err := uow.MembershipRepository().Upsert(ctx, &membership); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation accept: %w", err)
	}

	s.logger.Info("team", "invitation accepted", map[string]interface{}{
		"rescue_id": invitation.RescueId.String(),
		"user_id":   userId.String(),
	})
	return nil
}

// ResendInvitation re-fires the invite email. The token is not rotated.
func (s *teamService) ResendInvitation(ctx context.Context, authCtx *entity.AuthContext, invitationId uuid.UUID) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return apperr.Forbidden("staff cannot manage invitations")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invitation, err := uow.InvitationRepository().FindOne(ctx,
		specification.ByID{ID: invitationId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load invitation: %w", err)
	}
	if invitation == nil || !invitation.Consumable(time.Now()) {
		return apperr.NotFound("invitation not found")
	}

	s.publisher.Publish(ctx, events.NewInvitationIssued(
		invitation.Id, invitation.RescueId, invitation.Email,
		string(invitation.Role), invitation.Token, authCtx.Rescue.Name,
	))
	return nil
}

func (s *teamService) CancelInvitation(ctx context.Context, authCtx *entity.AuthContext, invitationId uuid.UUID) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return apperr.Forbidden("staff cannot manage invitations")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invitation, err := uow.InvitationRepository().FindOne(ctx,
		specification.ByID{ID: invitationId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load invitation: %w", err)
	}
	if invitation == nil {
		return apperr.NotFound("invitation not found")
	}
	if invitation.AcceptedAt != nil {
		return apperr.Validation("invitation was already accepted")
	}
	if invitation.CanceledAt != nil {
		return nil
	}

	now := time.Now()
	invitation.CanceledAt = &now
	if err := uow.InvitationRepository().Update(ctx, invitation); err != nil {
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}
	return nil
}

// UpdateMemberRole re-fetches the target's current role from the store; the
// client never supplies it.
func (s *teamService) UpdateMemberRole(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateMemberRoleRequest) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := s.loadTarget(ctx, uow, authCtx, req.UserId)
	if err != nil {
		return err
	}

	newRole := entity.MemberRole(req.Role)
	if !authCtx.Role.CanManageTarget(target.Role) || !authCtx.Role.CanManageTarget(newRole) {
		return apperr.Forbidden("you cannot manage this member")
	}

	if err := uow.MembershipRepository().UpdateRole(ctx, authCtx.Rescue.Id, req.UserId, newRole); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

func (s *teamService) RemoveMember(ctx context.Context, authCtx *entity.AuthContext, targetUserId uuid.UUID) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := s.loadTarget(ctx, uow, authCtx, targetUserId)
	if err != nil {
		return err
	}
	if !authCtx.Role.CanManageTarget(target.Role) {
		return apperr.Forbidden("you cannot manage this member")
	}

	if err := uow.MembershipRepository().Delete(ctx, authCtx.Rescue.Id, targetUserId); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *teamService) loadTarget(ctx context.Context, uow unitofwork.UnitOfWork, authCtx *entity.AuthContext, userId uuid.UUID) (*entity.Membership, error) {
	target, err := uow.MembershipRepository().FindOne(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	if target == nil {
		return nil, apperr.NotFound("member not found")
	}
	return target, nil
}

func (s *teamService) ListMembers(ctx context.Context, authCtx *entity.AuthContext) ([]dto.MemberResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.MembershipRepository().FindAll(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserId)
	}
	profiles, err := uow.ProfileRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("failed to load member profiles: %w", err)
	}
	byId := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, p := range profiles {
		byId[p.Id] = p
	}

	res := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		item := dto.MemberResponse{
			UserId:   m.UserId,
			Role:     string(m.Role),
			JoinedAt: m.CreatedAt,
		}
		if p, ok := byId[m.UserId]; ok {
			item.Email = p.Email
			item.DisplayName = p.DisplayName
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *teamService) ListInvitations(ctx context.Context, authCtx *entity.AuthContext) ([]dto.InvitationResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return nil, apperr.Forbidden("staff cannot view invitations")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invitations, err := uow.InvitationRepository().FindAll(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	res := make([]dto.InvitationResponse, 0, len(invitations))
	for _, i := range invitations {
		res = append(res, dto.InvitationResponse{
			Id:         i.Id,
			Email:      i.Email,
			Role:       string(i.Role),
			ExpiresAt:  i.ExpiresAt,
			AcceptedAt: i.AcceptedAt,
			CanceledAt: i.CanceledAt,
			CreatedAt:  i.CreatedAt,
		})
	}
	return res, nil
}
