package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/pkg/storage"

	"github.com/google/uuid"
)

const (
	adminPageSize  = 20
	publicPageSize = 9
)

type IAnimalService interface {
	Create(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	Update(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
	MoveStage(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.MoveStageRequest) (*dto.AnimalResponse, error)
	Show(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) (*dto.AnimalResponse, error)
	List(ctx context.Context, authCtx *entity.AuthContext, query *dto.ListAnimalsQuery) (*dto.AnimalListResponse, error)
	StageHistory(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) ([]dto.StageEventResponse, error)

	BulkArchive(ctx context.Context, authCtx *entity.AuthContext, req *dto.BulkAnimalRequest) (*dto.BulkResult, error)
	BulkActivate(ctx context.Context, authCtx *entity.AuthContext, req *dto.BulkAnimalRequest) (*dto.BulkResult, error)
	BulkStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkAnimalRequest) (*dto.BulkResult, error)

	AddPhoto(ctx context.Context, authCtx *entity.AuthContext, animalId uuid.UUID, originalName string, content io.Reader) (*dto.AnimalPhotoResponse, error)
	ReorderPhoto(ctx context.Context, authCtx *entity.AuthContext, animalId uuid.UUID, req *dto.ReorderPhotoRequest) error
	DeletePhoto(ctx context.Context, authCtx *entity.AuthContext, animalId, photoId uuid.UUID) error

	PublicList(ctx context.Context, slug string, query *dto.ListAnimalsQuery) (*dto.AnimalListResponse, error)
	PublicShow(ctx context.Context, slug string, animalId uuid.UUID) (*dto.AnimalResponse, error)
}

type animalService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *storage.LocalStorage
	logger     logger.ILogger
}

func NewAnimalService(
	uowFactory unitofwork.RepositoryFactory,
	store *storage.LocalStorage,
	log logger.ILogger,
) IAnimalService {
	return &animalService{
		uowFactory: uowFactory,
		store:      store,
		logger:     log,
	}
}

// deriveStageStatus applies the consistency rule. An explicit stage wins
// over an explicit status when both are supplied.
func deriveStageStatus(stage, status string) (entity.PipelineStage, entity.AnimalStatus) {
	if stage != "" {
		st := entity.PipelineStage(stage)
		return st, entity.StatusForStage(st)
	}
	if status != "" {
		s := entity.AnimalStatus(status)
		return entity.StageForStatus(s), s
	}
	return entity.StageIntake, entity.AnimalAvailable
}

func (s *animalService) Create(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return nil, apperr.Forbidden("staff cannot create animals")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	stage, status := deriveStageStatus(req.Stage, req.Status)
	animal := entity.Animal{
		Id:            uuid.New(),
		RescueId:      authCtx.Rescue.Id,
		Name:          req.Name,
		Species:       req.Species,
		Breed:         optional(req.Breed),
		Age:           optional(req.Age),
		Sex:           optional(req.Sex),
		Description:   optional(req.Description),
		Status:        status,
		PipelineStage: stage,
		Tags:          req.Tags,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	if err := uow.AnimalRepository().Create(ctx, &animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}

	s.logger.Info("animal", "animal created", map[string]interface{}{
		"animal_id": animal.Id.String(),
		"rescue_id": animal.RescueId.String(),
	})

	return s.toResponse(ctx, uow, &animal)
}

func (s *animalService) Update(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	// An update that touches neither field keeps the stored pair. The
	// intake/available default only applies on create.
	stage, status := animal.PipelineStage, animal.Status
	if req.Stage != "" || req.Status != "" {
		stage, status = deriveStageStatus(req.Stage, req.Status)
	}
	fromStage := animal.PipelineStage

	animal.Name = req.Name
	animal.Species = req.Species
	animal.Breed = optional(req.Breed)
	animal.Age = optional(req.Age)
	animal.Sex = optional(req.Sex)
	animal.Description = optional(req.Description)
	animal.Tags = req.Tags
	animal.PipelineStage = stage
	animal.Status = status

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.AnimalRepository().Update(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	if fromStage != stage {
		event := entity.StageEvent{
			Id:        uuid.New(),
			AnimalId:  animal.Id,
			FromStage: fromStage,
			ToStage:   stage,
			ChangedBy: actorId,
			CreatedAt: time.Now(),
		}
		if err := uow.StageEventRepository().Create(ctx, &event); err != nil {
			return nil, fmt.Errorf("failed to record stage event: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit animal update: %w", err)
	}

	return s.toResponse(ctx, uow, animal)
}

func (s *animalService) MoveStage(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.MoveStageRequest) (*dto.AnimalResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !entity.ValidPipelineStage(req.Stage) {
		return nil, apperr.Validation("unknown pipeline stage")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	toStage := entity.PipelineStage(req.Stage)
	if animal.PipelineStage == toStage {
		return s.toResponse(ctx, uow, animal)
	}

	fromStage := animal.PipelineStage
	animal.PipelineStage = toStage
	animal.Status = entity.StatusForStage(toStage)

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.AnimalRepository().Update(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to move animal: %w", err)
	}
	event := entity.StageEvent{
		Id:        uuid.New(),
		AnimalId:  animal.Id,
		FromStage: fromStage,
		ToStage:   toStage,
		ChangedBy: actorId,
		CreatedAt: time.Now(),
	}
	if err := uow.StageEventRepository().Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to record stage event: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stage move: %w", err)
	}

	return s.toResponse(ctx, uow, animal)
}

func (s *animalService) Show(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) (*dto.AnimalResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	return s.toResponse(ctx, uow, animal)
}

func (s *animalService) List(ctx context.Context, authCtx *entity.AuthContext, query *dto.ListAnimalsQuery) (*dto.AnimalListResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.ActiveIs{Active: !query.Archived},
	}
	if query.Search != "" {
		filters = append(filters, specification.NameSearch{Term: query.Search})
	}
	if query.Status != "" {
		filters = append(filters, specification.StatusIs{Status: query.Status})
	}
	if query.Species != "" {
		filters = append(filters, specification.SpeciesLike{Species: query.Species})
	}
	switch query.Inquiries {
	case "has":
		filters = append(filters, specification.InquiryCountCmp{HasInquiries: true})
	case "none":
		filters = append(filters, specification.InquiryCountCmp{HasInquiries: false})
	}

	total, err := uow.AnimalRepository().Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}

	var order specification.Specification
	switch query.Sort {
	case "oldest", "longest_listed":
		order = specification.OrderBy{Field: "created_at", Desc: false}
	case "most_inquiries":
		order = specification.OrderByInquiryCount{}
	default:
		order = specification.OrderBy{Field: "created_at", Desc: true}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	specs := append(filters, order, specification.Pagination{
		Limit:  adminPageSize,
		Offset: (page - 1) * adminPageSize,
	})

	animals, err := uow.AnimalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(animals))
	for _, a := range animals {
		ids = append(ids, a.Id)
	}
	counts, err := uow.AnimalRepository().InquiryCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry counts: %w", err)
	}

	res := dto.AnimalListResponse{
		Animals:  make([]dto.AnimalResponse, 0, len(animals)),
		Total:    total,
		Page:     page,
		PageSize: adminPageSize,
	}
	for _, a := range animals {
		res.Animals = append(res.Animals, *animalToResponse(a, counts[a.Id]))
	}
	return &res, nil
}

func (s *animalService) StageHistory(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) ([]dto.StageEventResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	events, err := uow.StageEventRepository().FindAll(ctx, specification.ByAnimalID{AnimalID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to load stage history: %w", err)
	}

	res := make([]dto.StageEventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, dto.StageEventResponse{
			Id:        e.Id,
			FromStage: string(e.FromStage),
			ToStage:   string(e.ToStage),
			ChangedBy: e.ChangedBy,
			CreatedAt: e.CreatedAt,
		})
	}
	return res, nil
}

func (s *animalService) BulkArchive(ctx context.Context, authCtx *entity.AuthContext, req *dto.BulkAnimalRequest) (*dto.BulkResult, error) {
	return s.bulkActiveFlag(ctx, authCtx, req, false)
}

func (s *animalService) BulkActivate(ctx context.Context, authCtx *entity.AuthContext, req *dto.BulkAnimalRequest) (*dto.BulkResult, error) {
	return s.bulkActiveFlag(ctx, authCtx, req, true)
}

func (s *animalService) bulkActiveFlag(ctx context.Context, authCtx *entity.AuthContext, req *dto.BulkAnimalRequest, active bool) (*dto.BulkResult, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return nil, apperr.Forbidden("staff cannot run bulk operations")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.AnimalRepository().UpdateFields(ctx,
		map[string]interface{}{"is_active": active},
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed bulk archive toggle: %w", err)
	}
	return &dto.BulkResult{Affected: affected}, nil
}

// BulkStatus sets a status across animals, re-derives their stage and
// reactivates them. Stage transitions still land in the event log.
func (s *animalService) BulkStatus(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.BulkAnimalRequest) (*dto.BulkResult, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if !authCtx.Role.CanManage() {
		return nil, apperr.Forbidden("staff cannot run bulk operations")
	}
	if !entity.ValidAnimalStatus(req.Status) {
		return nil, apperr.Validation("unknown animal status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.AnimalStatus(req.Status)
	stage := entity.StageForStatus(status)

	animals, err := uow.AnimalRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animals: %w", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	affected, err := uow.AnimalRepository().UpdateFields(ctx,
		map[string]interface{}{
			"status":         string(status),
			"pipeline_stage": string(stage),
			"is_active":      true,
		},
		specification.ByIDs{IDs: req.Ids},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed bulk status update: %w", err)
	}

	now := time.Now()
	for _, a := range animals {
		if a.PipelineStage == stage {
			continue
		}
		event := entity.StageEvent{
			Id:        uuid.New(),
			AnimalId:  a.Id,
			FromStage: a.PipelineStage,
			ToStage:   stage,
			ChangedBy: actorId,
			CreatedAt: now,
		}
		if err := uow.StageEventRepository().Create(ctx, &event); err != nil {
			return nil, fmt.Errorf("failed to record stage event: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk status: %w", err)
	}

	return &dto.BulkResult{Affected: affected}, nil
}

func (s *animalService) AddPhoto(ctx context.Context, authCtx *entity.AuthContext, animalId uuid.UUID, originalName string, content io.Reader) (*dto.AnimalPhotoResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: animalId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	objectPath, err := s.store.SavePhoto(animalId, originalName, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := entity.AnimalPhoto{
		Id:        uuid.New(),
		AnimalId:  animalId,
		ImageURL:  "/uploads/" + objectPath,
		SortOrder: len(animal.Photos),
		CreatedAt: time.Now(),
	}
	if err := uow.AnimalPhotoRepository().Create(ctx, &photo); err != nil {
		// Best-effort cleanup of the orphaned object.
		_ = s.store.Delete(objectPath)
		return nil, fmt.Errorf("failed to save photo record: %w", err)
	}

	return &dto.AnimalPhotoResponse{
		Id:        photo.Id,
		ImageURL:  photo.ImageURL,
		SortOrder: photo.SortOrder,
	}, nil
}

func (s *animalService) ReorderPhoto(ctx context.Context, authCtx *entity.AuthContext, animalId uuid.UUID, req *dto.ReorderPhotoRequest) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: animalId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return apperr.NotFound("animal not found")
	}

	idx := -1
	for i, p := range animal.Photos {
		if p.Id == req.PhotoId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("photo not found")
	}

	swap := idx - 1
	if req.Direction == "down" {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(animal.Photos) {
		// Already at the edge, nothing to do.
		return nil
	}

	a, b := animal.Photos[idx], animal.Photos[swap]

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.AnimalPhotoRepository().UpdateSortOrder(ctx, a.Id, b.SortOrder); err != nil {
		return fmt.Errorf("failed to reorder photo: %w", err)
	}
	if err := uow.AnimalPhotoRepository().UpdateSortOrder(ctx, b.Id, a.SortOrder); err != nil {
		return fmt.Errorf("failed to reorder photo: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

func (s *animalService) DeletePhoto(ctx context.Context, authCtx *entity.AuthContext, animalId, photoId uuid.UUID) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: animalId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return apperr.NotFound("animal not found")
	}

	var target *entity.AnimalPhoto
	for _, p := range animal.Photos {
		if p.Id == photoId {
			target = p
			break
		}
	}
	if target == nil {
		return apperr.NotFound("photo not found")
	}

	if err := uow.AnimalPhotoRepository().Delete(ctx, photoId); err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}

	// Storage cleanup is best effort; a dangling file never fails the call.
	objectPath := strings.TrimPrefix(target.ImageURL, "/uploads/")
	if err := s.store.Delete(objectPath); err != nil {
		s.logger.Warn("animal", "photo file cleanup failed", map[string]interface{}{
			"photo_id": photoId.String(),
			"error":    err.Error(),
		})
	}
	return nil
}

func (s *animalService) PublicList(ctx context.Context, slug string, query *dto.ListAnimalsQuery) (*dto.AnimalListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rescue, err := s.publicRescue(ctx, uow, slug)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{
		specification.ByRescueID{RescueID: rescue.Id},
		specification.ActiveIs{Active: true},
	}
	if query.Species != "" {
		filters = append(filters, specification.SpeciesLike{Species: query.Species})
	}
	if query.Status != "" {
		filters = append(filters, specification.StatusIs{Status: query.Status})
	}

	total, err := uow.AnimalRepository().Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	specs := append(filters,
		specification.OrderBy{Field: "status", Desc: false},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: publicPageSize, Offset: (page - 1) * publicPageSize},
	)

	animals, err := uow.AnimalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	res := dto.AnimalListResponse{
		Animals:  make([]dto.AnimalResponse, 0, len(animals)),
		Total:    total,
		Page:     page,
		PageSize: publicPageSize,
	}
	for _, a := range animals {
		res.Animals = append(res.Animals, *animalToResponse(a, 0))
	}
	return &res, nil
}

func (s *animalService) PublicShow(ctx context.Context, slug string, animalId uuid.UUID) (*dto.AnimalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rescue, err := s.publicRescue(ctx, uow, slug)
	if err != nil {
		return nil, err
	}

	animal, err := uow.AnimalRepository().FindOne(ctx,
		specification.ByID{ID: animalId},
		specification.ByRescueID{RescueID: rescue.Id},
		specification.ActiveIs{Active: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if animal == nil {
		return nil, apperr.NotFound("animal not found")
	}

	return animalToResponse(animal, 0), nil
}

func (s *animalService) publicRescue(ctx context.Context, uow unitofwork.UnitOfWork, slug string) (*entity.Rescue, error) {
	rescue, err := uow.RescueRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil || !rescue.IsPublic || rescue.Disabled {
		return nil, apperr.NotFound("rescue not found")
	}
	return rescue, nil
}

func (s *animalService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, animal *entity.Animal) (*dto.AnimalResponse, error) {
	counts, err := uow.AnimalRepository().InquiryCounts(ctx, []uuid.UUID{animal.Id})
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry count: %w", err)
	}
	return animalToResponse(animal, counts[animal.Id]), nil
}

func animalToResponse(a *entity.Animal, inquiryCount int64) *dto.AnimalResponse {
	photos := make([]dto.AnimalPhotoResponse, 0, len(a.Photos))
	for _, p := range a.Photos {
		photos = append(photos, dto.AnimalPhotoResponse{
			Id:        p.Id,
			ImageURL:  p.ImageURL,
			SortOrder: p.SortOrder,
		})
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.AnimalResponse{
		Id:            a.Id,
		Name:          a.Name,
		Species:       a.Species,
		Breed:         a.Breed,
		Age:           a.Age,
		Sex:           a.Sex,
		Description:   a.Description,
		Status:        string(a.Status),
		PipelineStage: string(a.PipelineStage),
		Tags:          tags,
		IsActive:      a.IsActive,
		InquiryCount:  inquiryCount,
		Photos:        photos,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
