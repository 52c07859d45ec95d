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

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IModerationService interface {
	// IsOperator checks the platform allowlist. Operator capability is
	// independent of rescue membership.
	IsOperator(email string) bool

	SubmitReport(ctx context.Context, req *dto.SubmitReportRequest) (*dto.ReportResponse, error)
	ListReports(ctx context.Context, status string) ([]dto.ReportResponse, error)
	UpdateReport(ctx context.Context, operatorId uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error)
	ListActions(ctx context.Context, rescueId uuid.UUID) ([]dto.ModerationActionResponse, error)

	ListVerifications(ctx context.Context, status string) ([]dto.VerificationRequestResponse, error)
	ApproveVerification(ctx context.Context, operatorId, requestId uuid.UUID) error
	RejectVerification(ctx context.Context, operatorId, requestId uuid.UUID) error

	SetRescueDisabled(ctx context.Context, operatorId uuid.UUID, req *dto.DisableRescueRequest) error
}

type moderationService struct {
	// elevatedFactory runs on the service connection: operators act across
	// tenants.
	elevatedFactory unitofwork.RepositoryFactory
	operatorEmails  []string
	allowlistMemo   *gocache.Cache
	logger          logger.ILogger
}

func NewModerationService(
	elevatedFactory unitofwork.RepositoryFactory,
	operatorEmails []string,
	log logger.ILogger,
) IModerationService {
	return &moderationService{
		elevatedFactory: elevatedFactory,
		operatorEmails:  operatorEmails,
		allowlistMemo:   gocache.New(time.Minute, 5*time.Minute),
		logger:          log,
	}
}

func (s *moderationService) IsOperator(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	if cached, found := s.allowlistMemo.Get(email); found {
		return cached.(bool)
	}
	allowed := false
	for _, op := range s.operatorEmails {
		if op == email {
			allowed = true
			break
		}
	}
	s.allowlistMemo.Set(email, allowed, gocache.DefaultExpiration)
	return allowed
}

func (s *moderationService) SubmitReport(ctx context.Context, req *dto.SubmitReportRequest) (*dto.ReportResponse, error) {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	rescue, err := uow.RescueRepository().FindOne(ctx, specification.BySlug{Slug: req.RescueSlug})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil {
		return nil, apperr.NotFound("rescue not found")
	}

	report := entity.AbuseReport{
		Id:            uuid.New(),
		RescueId:      rescue.Id,
		ReporterEmail: strings.ToLower(req.ReporterEmail),
		Reason:        req.Reason,
		Status:        entity.ReportOpen,
		CreatedAt:     time.Now(),
	}
	if req.AnimalId != "" {
		if id, err := uuid.Parse(req.AnimalId); err == nil {
			report.AnimalId = &id
		}
	}
	if req.InquiryId != "" {
		if id, err := uuid.Parse(req.InquiryId); err == nil {
			report.InquiryId = &id
		}
	}

	if err := uow.AbuseReportRepository().Create(ctx, &report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return reportToResponse(&report, rescue.Name), nil
}

func (s *moderationService) ListReports(ctx context.Context, status string) ([]dto.ReportResponse, error) {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		if !entity.ValidReportStatus(status) {
			return nil, apperr.Validation("unknown report status")
		}
		specs = append(specs, specification.StatusIs{Status: status})
	}

	reports, err := uow.AbuseReportRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	names := s.rescueNames(ctx, uow, reportRescueIds(reports))
	res := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, *reportToResponse(r, names[r.RescueId]))
	}
	return res, nil
}

// UpdateReport records the triage decision. An actionable outcome writes an
// immutable ModerationAction and applies its enforcement in the same
// transaction; resolving a report that is still open closes it.
func (s *moderationService) UpdateReport(ctx context.Context, operatorId uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	if !entity.ValidReportStatus(req.Status) {
		return nil, apperr.Validation("unknown report status")
	}
	if !entity.ValidReportOutcome(req.Outcome) {
		return nil, apperr.Validation("unknown report outcome")
	}

	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	report, err := uow.AbuseReportRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	if report == nil {
		return nil, apperr.NotFound("report not found")
	}

	status := entity.ReportStatus(req.Status)
	outcome := entity.ReportOutcome(req.Outcome)

	actionType, actionable := entity.ActionForOutcome(outcome)
	if actionable && status == entity.ReportOpen {
		status = entity.ReportClosed
	}

	now := time.Now()
	report.Status = status
	report.Outcome = &outcome
	if req.ResolutionNotes != "" {
		notes := req.ResolutionNotes
		report.ResolutionNotes = &notes
	}
	if actionable {
		report.ResolvedAt = &now
		report.ResolvedBy = &operatorId
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.AbuseReportRepository().Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	if actionable {
		action := entity.ModerationAction{
			Id:         uuid.New(),
			RescueId:   report.RescueId,
			AnimalId:   report.AnimalId,
			InquiryId:  report.InquiryId,
			ReportId:   report.Id,
			ActionType: actionType,
			Reason:     report.Reason,
			Details:    report.ResolutionNotes,
			CreatedBy:  operatorId,
			Resolved:   true,
			CreatedAt:  now,
		}
		if req.ExpiryDays > 0 && (actionType == entity.ActionHide || actionType == entity.ActionSuspend) {
			expiry := now.AddDate(0, 0, req.ExpiryDays)
			action.ExpiresAt = &expiry
		}
		if err := uow.ModerationActionRepository().Create(ctx, &action); err != nil {
			return nil, fmt.Errorf("failed to record moderation action: %w", err)
		}

		if err := s.enforce(ctx, uow, &action); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit report update: %w", err)
	}

	s.logger.Info("moderation", "report updated", map[string]interface{}{
		"report_id": report.Id.String(),
		"status":    string(report.Status),
		"outcome":   string(outcome),
	})

	return reportToResponse(report, ""), nil
}

// enforce applies the side effect of an action: hides pull the animal off
// the public site, suspensions disable the rescue.
func (s *moderationService) enforce(ctx context.Context, uow unitofwork.UnitOfWork, action *entity.ModerationAction) error {
	switch action.ActionType {
	case entity.ActionHide:
		if action.AnimalId == nil {
			return nil
		}
		_, err := uow.AnimalRepository().UpdateFields(ctx,
			map[string]interface{}{"is_active": false},
			specification.ByID{ID: *action.AnimalId},
		)
		if err != nil {
			return fmt.Errorf("failed to hide animal: %w", err)
		}
	case entity.ActionSuspend:
		now := time.Now()
		_, err := uow.RescueRepository().UpdateFields(ctx,
			map[string]interface{}{"disabled": true, "disabled_at": now},
			specification.ByID{ID: action.RescueId},
		)
		if err != nil {
			return fmt.Errorf("failed to suspend rescue: %w", err)
		}
	}
	return nil
}

func (s *moderationService) ListActions(ctx context.Context, rescueId uuid.UUID) ([]dto.ModerationActionResponse, error) {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if rescueId != uuid.Nil {
		specs = append(specs, specification.ByRescueID{RescueID: rescueId})
	}

	actions, err := uow.ModerationActionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	res := make([]dto.ModerationActionResponse, 0, len(actions))
	for _, a := range actions {
		res = append(res, dto.ModerationActionResponse{
			Id:         a.Id,
			RescueId:   a.RescueId,
			ReportId:   a.ReportId,
			ActionType: string(a.ActionType),
			Reason:     a.Reason,
			ExpiresAt:  a.ExpiresAt,
			Resolved:   a.Resolved,
			CreatedAt:  a.CreatedAt,
		})
	}
	return res, nil
}

func (s *moderationService) ListVerifications(ctx context.Context, status string) ([]dto.VerificationRequestResponse, error) {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if status != "" {
		specs = append(specs, specification.StatusIs{Status: status})
	}

	requests, err := uow.VerificationRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification requests: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.RescueId)
	}
	names := s.rescueNames(ctx, uow, ids)

	res := make([]dto.VerificationRequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, dto.VerificationRequestResponse{
			Id:         r.Id,
			RescueId:   r.RescueId,
			RescueName: names[r.RescueId],
			EIN:        r.EIN,
			Details:    r.Details,
			Status:     string(r.Status),
			ReviewedAt: r.ReviewedAt,
			CreatedAt:  r.CreatedAt,
		})
	}
	return res, nil
}

// ApproveVerification grants verified_501c3 when an EIN was supplied,
// plain verified otherwise.
func (s *moderationService) ApproveVerification(ctx context.Context, operatorId, requestId uuid.UUID) error {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	request, err := s.loadPendingRequest(ctx, uow, requestId)
	if err != nil {
		return err
	}

	level := entity.VerificationVerified
	if request.EIN != nil && *request.EIN != "" {
		level = entity.Verification501c3
	}

	now := time.Now()
	request.Status = entity.VerificationRequestApproved
	request.ReviewerUserId = &operatorId
	request.ReviewedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.VerificationRequestRepository().Update(ctx, request); err != nil {
		return fmt.Errorf("failed to update verification request: %w", err)
	}
	_, err = uow.RescueRepository().UpdateFields(ctx,
		map[string]interface{}{
			"verification_status": string(level),
			"verified_at":         now,
		},
		specification.ByID{ID: request.RescueId},
	)
	if err != nil {
		return fmt.Errorf("failed to mark rescue verified: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification approval: %w", err)
	}
	return nil
}

func (s *moderationService) RejectVerification(ctx context.Context, operatorId, requestId uuid.UUID) error {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	request, err := s.loadPendingRequest(ctx, uow, requestId)
	if err != nil {
		return err
	}

	now := time.Now()
	request.Status = entity.VerificationRequestRejected
	request.ReviewerUserId = &operatorId
	request.ReviewedAt = &now

	if err := uow.VerificationRequestRepository().Update(ctx, request); err != nil {
		return fmt.Errorf("failed to update verification request: %w", err)
	}
	return nil
}

func (s *moderationService) loadPendingRequest(ctx context.Context, uow unitofwork.UnitOfWork, requestId uuid.UUID) (*entity.VerificationRequest, error) {
	request, err := uow.VerificationRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, fmt.Errorf("failed to load verification request: %w", err)
	}
	if request == nil {
		return nil, apperr.NotFound("verification request not found")
	}
	if request.Status != entity.VerificationRequestPending {
		return nil, apperr.Validation("verification request was already reviewed")
	}
	return request, nil
}

// SetRescueDisabled toggles the tenant kill switch. The update is idempotent.
func (s *moderationService) SetRescueDisabled(ctx context.Context, operatorId uuid.UUID, req *dto.DisableRescueRequest) error {
	uow := s.elevatedFactory.NewUnitOfWork(ctx)

	fields := map[string]interface{}{"disabled": req.Disabled}
	if req.Disabled {
		fields["disabled_at"] = time.Now()
	} else {
		fields["disabled_at"] = nil
	}

	affected, err := uow.RescueRepository().UpdateFields(ctx, fields, specification.ByID{ID: req.RescueId})
	if err != nil {
		return fmt.Errorf("failed to toggle rescue: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("rescue not found")
	}

	s.logger.Info("moderation", "rescue disabled toggled", map[string]interface{}{
		"rescue_id": req.RescueId.String(),
		"disabled":  req.Disabled,
		"operator":  operatorId.String(),
	})
	return nil
}

func (s *moderationService) rescueNames(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(ids) == 0 {
		return names
	}
	rescues, err := uow.RescueRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.logger.Warn("moderation", "failed to load rescue names", map[string]interface{}{"error": err.Error()})
		return names
	}
	for _, r := range rescues {
		names[r.Id] = r.Name
	}
	return names
}

func reportRescueIds(reports []*entity.AbuseReport) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(reports))
	seen := make(map[uuid.UUID]bool)
	for _, r := range reports {
		if !seen[r.RescueId] {
			seen[r.RescueId] = true
			ids = append(ids, r.RescueId)
		}
	}
	return ids
}

func reportToResponse(r *entity.AbuseReport, rescueName string) *dto.ReportResponse {
	res := dto.ReportResponse{
		Id:              r.Id,
		RescueId:        r.RescueId,
		RescueName:      rescueName,
		AnimalId:        r.AnimalId,
		InquiryId:       r.InquiryId,
		ReporterEmail:   r.ReporterEmail,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ResolutionNotes: r.ResolutionNotes,
		ResolvedAt:      r.ResolvedAt,
		CreatedAt:       r.CreatedAt,
	}
	if r.Outcome != nil {
		outcome := string(*r.Outcome)
		res.Outcome = &outcome
	}
	return &res
}
