package service

import (
	"context"
	"fmt"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/pkg/events"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	// duplicateWindow is the lookback for the "same adopter, same animal"
	// hint on inquiry detail.
	duplicateWindow = 7 * 24 * time.Hour
	// trackingTokenTTL bounds the adopter-facing status lookup.
	trackingTokenTTL = 90 * 24 * time.Hour
)

type IInquiryService interface {
	SubmitPublic(ctx context.Context, slug string, req *dto.SubmitInquiryRequest) (*dto.SubmitInquiryResponse, error)
	Track(ctx context.Context, token string) (*dto.TrackingStatusResponse, error)

	Show(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) (*dto.InquiryDetailResponse, error)
	List(ctx context.Context, authCtx *entity.AuthContext, query *dto.ListInquiriesQuery) (*dto.InquiryListResponse, error)
	Counts(ctx context.Context, authCtx *entity.AuthContext) (*dto.InquiryCountsResponse, error)

	UpdateStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error)
	UpdateAssignment(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateInquiryAssignmentRequest) (*dto.InquiryResponse, error)
	Archive(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, id uuid.UUID) error
	Restore(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, id uuid.UUID) error
	AddNote(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.AddInquiryNoteRequest) error

	BulkArchive(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error)
	BulkStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error)
	BulkAssign(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error)
}

type inquiryService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	dupCache   *gocache.Cache
	logger     logger.ILogger
}

func NewInquiryService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IInquiryService {
	return &inquiryService{
		uowFactory: uowFactory,
		publisher:  publisher,
		dupCache:   gocache.New(5*time.Minute, 10*time.Minute),
		logger:     log,
	}
}

func (s *inquiryService) SubmitPublic(ctx context.Context, slug string, req *dto.SubmitInquiryRequest) (*dto.SubmitInquiryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rescue, err := uow.RescueRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil || !rescue.IsPublic || rescue.Disabled {
		return nil, apperr.NotFound("rescue not found")
	}

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: req.AnimalId},
		specification.ByRescueID{RescueID: rescue.Id},
		specification.ActiveIs{Active: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	now := time.Now()
	expires := now.Add(trackingTokenTTL)
	inquiry := entity.Inquiry{
		Id:             uuid.New(),
		RescueId:       rescue.Id,
		AnimalId:       animal.Id,
		AdopterName:    req.AdopterName,
		AdopterEmail:   req.AdopterEmail,
		Message:        req.Message,
		Status:         entity.InquiryNew,
		TrackingToken:  uuid.NewString(),
		TokenExpiresAt: &expires,
		CreatedAt:      now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.InquiryRepository().Create(ctx, &inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	body := "inquiry submitted"
	event := entity.InquiryEvent{
		Id:        uuid.New(),
		InquiryId: inquiry.Id,
		EventType: entity.EventSystem,
		Body:      &body,
		ActorId:   uuid.Nil,
		CreatedAt: now,
	}
	if err := uow.InquiryEventRepository().Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to record inquiry event: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit inquiry: %w", err)
	}

	s.publisher.Publish(ctx, events.NewInquiryCreated(
		inquiry.Id, animal.Id, rescue.Id,
		inquiry.AdopterName, inquiry.AdopterEmail, animal.Name,
	))

	return &dto.SubmitInquiryResponse{
		Id:            inquiry.Id,
		TrackingToken: inquiry.TrackingToken,
	}, nil
}

func (s *inquiryService) Track(ctx context.Context, token string) (*dto.TrackingStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.FilterBy{Field: "tracking_token", Value: token})
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry: %w", err)
	}
	if inquiry == nil || !inquiry.TrackingUsable(time.Now()) {
		return nil, apperr.NotFound("tracking link is invalid or expired")
	}

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: inquiry.AnimalId})
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	animalName := ""
	if animal != nil {
		animalName = animal.Name
	}

	return &dto.TrackingStatusResponse{
		AnimalName:  animalName,
		Status:      string(inquiry.Status),
		SubmittedAt: inquiry.CreatedAt,
	}, nil
}

func (s *inquiryService) Show(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) (*dto.InquiryDetailResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := s.load(ctx, uow, authCtx, id)
	if err != nil {
		return nil, err
	}

	eventRows, err := uow.InquiryEventRepository().FindAll(ctx, specification.FilterBy{Field: "inquiry_id", Value: id})
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry events: %w", err)
	}

	dup, err := s.duplicateHint(ctx, uow, inquiry)
	if err != nil {
		return nil, err
	}

	animalName := s.animalName(ctx, uow, inquiry.AnimalId)

	detail := dto.InquiryDetailResponse{
		Inquiry:       *inquiryToResponse(inquiry, animalName, time.Now()),
		Events:        make([]dto.InquiryEventResponse, 0, len(eventRows)),
		DuplicateHint: dup,
	}
	for _, e := range eventRows {
		detail.Events = append(detail.Events, dto.InquiryEventResponse{
			Id:        e.Id,
			EventType: string(e.EventType),
			FromValue: e.FromValue,
			ToValue:   e.ToValue,
			Body:      e.Body,
			ActorId:   e.ActorId,
			CreatedAt: e.CreatedAt,
		})
	}
	return &detail, nil
}

// duplicateHint checks the lookback window once per inquiry per cache TTL.
func (s *inquiryService) duplicateHint(ctx context.Context, uow unitofwork.UnitOfWork, inquiry *entity.Inquiry) (bool, error) {
	cacheKey := inquiry.Id.String()
	if cached, found := s.dupCache.Get(cacheKey); found {
		return cached.(bool), nil
	}

	count, err := uow.InquiryRepository().Count(ctx,
		specification.ByRescueID{RescueID: inquiry.RescueId},
		specification.ByAdopterEmail{Email: inquiry.AdopterEmail},
		specification.FilterBy{Field: "animal_id", Value: inquiry.AnimalId},
		specification.ExcludeID{ID: inquiry.Id},
		specification.CreatedAfter{Cutoff: inquiry.CreatedAt.Add(-duplicateWindow)},
	)
	if err != nil {
		return false, fmt.Errorf("failed duplicate lookup: %w", err)
	}

	dup := count > 0
	s.dupCache.Set(cacheKey, dup, gocache.DefaultExpiration)
	return dup, nil
}

func (s *inquiryService) List(ctx context.Context, authCtx *entity.AuthContext, query *dto.ListInquiriesQuery) (*dto.InquiryListResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ArchivedIs{Archived: query.Archived},
	}
	if query.Status != "" {
		filters = append(filters, specification.StatusIs{Status: query.Status})
	}
	if query.Days > 0 {
		filters = append(filters, specification.CreatedAfter{
			Cutoff: time.Now().AddDate(0, 0, -query.Days),
		})
	}
	if query.Stale {
		filters = append(filters, specification.StaleNew{Cutoff: time.Now().Add(-entity.StaleAfter)})
	}
	if query.Species != "" {
		filters = append(filters, specification.AnimalSpecies{Species: query.Species})
	}
	switch query.Assignee {
	case "":
	case "unassigned":
		filters = append(filters, specification.Unassigned{})
	default:
		assignee, err := uuid.Parse(query.Assignee)
		if err != nil {
			return nil, apperr.Validation("assignee must be a user id or 'unassigned'")
		}
		filters = append(filters, specification.AssignedToUser{UserID: assignee})
	}

	total, err := uow.InquiryRepository().Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: adminPageSize, Offset: (page - 1) * adminPageSize},
	)

	inquiries, err := uow.InquiryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	names := s.animalNames(ctx, uow, inquiries)

	now := time.Now()
	res := dto.InquiryListResponse{
		Inquiries: make([]dto.InquiryResponse, 0, len(inquiries)),
		Total:     total,
		Page:      page,
		PageSize:  adminPageSize,
	}
	for _, i := range inquiries {
		res.Inquiries = append(res.Inquiries, *inquiryToResponse(i, names[i.AnimalId], now))
	}
	return &res, nil
}

func (s *inquiryService) Counts(ctx context.Context, authCtx *entity.AuthContext) (*dto.InquiryCountsResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	recent, err := uow.InquiryRepository().Count(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ArchivedIs{Archived: false},
		specification.CreatedAfter{Cutoff: now.AddDate(0, 0, -7)},
	)
	if err != nil {
		return nil, fmt.Errorf("failed recent count: %w", err)
	}

	noResponse, err := uow.InquiryRepository().Count(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ArchivedIs{Archived: false},
		specification.StaleNew{Cutoff: now.Add(-entity.StaleAfter)},
	)
	if err != nil {
		return nil, fmt.Errorf("failed stale count: %w", err)
	}

	return &dto.InquiryCountsResponse{Recent: recent, NoResponse: noResponse}, nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !entity.ValidInquiryStatus(req.Status) {
		return nil, apperr.Validation("unknown inquiry status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := s.load(ctx, uow, authCtx, req.Id)
	if err != nil {
		return nil, err
	}

	from := inquiry.Status
	to := entity.InquiryStatus(req.Status)
	if from == to {
		return inquiryToResponse(inquiry, s.animalName(ctx, uow, inquiry.AnimalId), time.Now()), nil
	}

	now := time.Now()
	inquiry.Status = to
	// First response is stamped exactly once, on the first move out of new.
	if from == entity.InquiryNew && inquiry.FirstRespondedAt == nil {
		inquiry.FirstRespondedAt = &now
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}
	if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventStatusChange, string(from), string(to), "", actorId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	animalName := s.animalName(ctx, uow, inquiry.AnimalId)
	s.publisher.Publish(ctx, events.NewInquiryStatusChanged(
		inquiry.Id, inquiry.RescueId, inquiry.AdopterEmail, animalName, string(from), string(to),
	))

	return inquiryToResponse(inquiry, animalName, now), nil
}

func (s *inquiryService) UpdateAssignment(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateInquiryAssignmentRequest) (*dto.InquiryResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := s.load(ctx, uow, authCtx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo != nil {
		member, err := uow.MembershipRepository().FindOne(ctx,
			specification.ByRescueID{RescueID: authCtx.Rescue.Id},
			specification.ByUserID{UserID: *req.AssignedTo},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to check assignee: %w", err)
		}
		if member == nil {
			return nil, apperr.Validation("assignee is not a member of this rescue")
		}
	}

	from := uuidOrEmpty(inquiry.AssignedTo)
	to := uuidOrEmpty(req.AssignedTo)
	if from == to {
		return inquiryToResponse(inquiry, s.animalName(ctx, uow, inquiry.AnimalId), time.Now()), nil
	}

	inquiry.AssignedTo = req.AssignedTo

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}
	if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventAssignmentChange, from, to, "", actorId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment change: %w", err)
	}

	return inquiryToResponse(inquiry, s.animalName(ctx, uow, inquiry.AnimalId), time.Now()), nil
}

func (s *inquiryService) Archive(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, authCtx, actorId, id, true)
}

func (s *inquiryService) Restore(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, authCtx, actorId, id, false)
}

func (s *inquiryService) setArchived(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, id uuid.UUID, archived bool) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := s.load(ctx, uow, authCtx, id)
	if err != nil {
		return err
	}
	if inquiry.Archived == archived {
		return nil
	}

	now := time.Now()
	inquiry.Archived = archived
	if archived {
		inquiry.ArchivedAt = &now
		inquiry.ArchivedBy = &actorId
	} else {
		inquiry.ArchivedAt = nil
		inquiry.ArchivedBy = nil
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to update inquiry: %w", err)
	}
	body := "inquiry archived"
	if !archived {
		body = "inquiry restored"
	}
	if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventSystem, "", "", body, actorId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive toggle: %w", err)
	}
	return nil
}

func (s *inquiryService) AddNote(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.AddInquiryNoteRequest) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := s.load(ctx, uow, authCtx, req.Id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	note := entity.InquiryNote{
		Id:        uuid.New(),
		InquiryId: inquiry.Id,
		AuthorId:  actorId,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := uow.InquiryNoteRepository().Create(ctx, &note); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventNote, "", "", req.Body, actorId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit note: %w", err)
	}
	return nil
}

func (s *inquiryService) BulkArchive(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Only rows belonging to this rescue are loaded, so foreign or bogus
	// ids in the request never archive anything or leave an event behind.
	inquiries, err := uow.InquiryRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiries: %w", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	now := time.Now()
	var affected int64
	for _, inquiry := range inquiries {
		if inquiry.Archived {
			continue
		}
		inquiry.Archived = true
		inquiry.ArchivedAt = &now
		inquiry.ArchivedBy = &actorId
		if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
			return nil, fmt.Errorf("failed to update inquiry: %w", err)
		}
		if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventSystem, "", "", "inquiry archived", actorId); err != nil {
			return nil, err
		}
		affected++
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk archive: %w", err)
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *inquiryService) BulkStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !entity.ValidInquiryStatus(req.Status) {
		return nil, apperr.Validation("unknown inquiry status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	to := entity.InquiryStatus(req.Status)

	inquiries, err := uow.InquiryRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiries: %w", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	now := time.Now()
	var affected int64
	for _, inquiry := range inquiries {
		from := inquiry.Status
		if from == to {
			continue
		}
		inquiry.Status = to
		if from == entity.InquiryNew && inquiry.FirstRespondedAt == nil {
			inquiry.FirstRespondedAt = &now
		}
		if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
			return nil, fmt.Errorf("failed to update inquiry: %w", err)
		}
		if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventStatusChange, string(from), string(to), "", actorId); err != nil {
			return nil, err
		}
		affected++
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk status: %w", err)
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *inquiryService) BulkAssign(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkInquiryRequest) (*dto.BulkResult, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.AssignedTo != nil {
		member, err := uow.MembershipRepository().FindOne(ctx,
			specification.ByRescueID{RescueID: authCtx.Rescue.Id},
			specification.ByUserID{UserID: *req.AssignedTo},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to check assignee: %w", err)
		}
		if member == nil {
			return nil, apperr.Validation("assignee is not a member of this rescue")
		}
	}

	inquiries, err := uow.InquiryRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiries: %w", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	var affected int64
	for _, inquiry := range inquiries {
		from := uuidOrEmpty(inquiry.AssignedTo)
		to := uuidOrEmpty(req.AssignedTo)
		if from == to {
			continue
		}
		inquiry.AssignedTo = req.AssignedTo
		if err := uow.InquiryRepository().Update(ctx, inquiry); err != nil {
			return nil, fmt.Errorf("failed to update inquiry: %w", err)
		}
		if err := s.appendEvent(ctx, uow, inquiry.Id, entity.EventAssignmentChange, from, to, "", actorId); err != nil {
			return nil, err
		}
		affected++
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk assign: %w", err)
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *inquiryService) load(ctx context.Context, uow unitofwork.UnitOfWork, authCtx *entity.AuthContext, id uuid.UUID) (*entity.Inquiry, error) {
	inquiry, err := uow.InquiryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry: %w", err)
	}
	if inquiry == nil {
		return nil, apperr.NotFound("inquiry not found")
	}
	return inquiry, nil
}

func (s *inquiryService) appendEvent(ctx context.Context, uow unitofwork.UnitOfWork, inquiryId uuid.UUID, eventType entity.InquiryEventType, from, to, body string, actorId uuid.UUID) error {
	event := entity.InquiryEvent{
		Id:        uuid.New(),
		InquiryId: inquiryId,
		EventType: eventType,
		ActorId:   actorId,
		CreatedAt: time.Now(),
	}
	if from != "" {
		event.FromValue = &from
	}
	if to != "" {
		event.ToValue = &to
	}
	if body != "" {
		event.Body = &body
	}
	if err := uow.InquiryEventRepository().Create(ctx, &event); err != nil {
		return fmt.Errorf("failed to record inquiry event: %w", err)
	}
	return nil
}

func (s *inquiryService) animalName(ctx context.Context, uow unitofwork.UnitOfWork, animalId uuid.UUID) string {
	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: animalId})
	if err != nil || animal == nil {
		return ""
	}
	return animal.Name
}

func (s *inquiryService) animalNames(ctx context.Context, uow unitofwork.UnitOfWork, inquiries []*entity.Inquiry) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(inquiries) == 0 {
		return names
	}
	ids := make([]uuid.UUID, 0, len(inquiries))
	seen := make(map[uuid.UUID]bool)
	for _, i := range inquiries {
		if !seen[i.AnimalId] {
			seen[i.AnimalId] = true
			ids = append(ids, i.AnimalId)
		}
	}
	animals, err := uow.AnimalRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.logger.Warn("inquiry", "failed to load animal names", map[string]interface{}{"error": err.Error()})
		return names
	}
	for _, a := range animals {
		names[a.Id] = a.Name
	}
	return names
}

func inquiryToResponse(i *entity.Inquiry, animalName string, now time.Time) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		Id:               i.Id,
		AnimalId:         i.AnimalId,
		AnimalName:       animalName,
		AdopterName:      i.AdopterName,
		AdopterEmail:     i.AdopterEmail,
		Message:          i.Message,
		Status:           string(i.Status),
		AssignedTo:       i.AssignedTo,
		FirstRespondedAt: i.FirstRespondedAt,
		Archived:         i.Archived,
		Stale:            i.Stale(now),
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
