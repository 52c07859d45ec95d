package service

import (
	"context"
	"testing"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRescueWithAnimal(store *fakeStore) (*entity.Rescue, *entity.Animal) {
	rescue := &entity.Rescue{
		Id:           uuid.New(),
		Name:         "Harbor Tails",
		Slug:         "harbor-tails",
		ContactEmail: "team@harbortails.example",
		IsPublic:     true,
		PlanTier:     entity.PlanTierFree,
	}
	animal := &entity.Animal{
		Id:       uuid.New(),
		RescueId: rescue.Id,
		Name:     "Pepper",
		Species:  "dog",
		Status:   entity.AnimalAvailable,
		IsActive: true,
	}
	store.rescues = append(store.rescues, rescue)
	store.animals = append(store.animals, animal)
	return rescue, animal
}

func seedInquiry(store *fakeStore, rescue *entity.Rescue, animal *entity.Animal, status entity.InquiryStatus) *entity.Inquiry {
	expires := time.Now().Add(30 * 24 * time.Hour)
	inquiry := &entity.Inquiry{
		Id:             uuid.New(),
		RescueId:       rescue.Id,
		AnimalId:       animal.Id,
		AdopterName:    "Sam Doe",
		AdopterEmail:   "sam@example.com",
		Message:        "Tell me more about this pup please.",
		Status:         status,
		TrackingToken:  uuid.NewString(),
		TokenExpiresAt: &expires,
		CreatedAt:      time.Now().Add(-time.Hour),
	}
	store.inquiries = append(store.inquiries, inquiry)
	return inquiry
}

func authContextFor(rescue *entity.Rescue, role entity.MemberRole) *entity.AuthContext {
	return &entity.AuthContext{Rescue: rescue, Role: role}
}

func TestSubmitPublicCreatesInquiryAndEvent(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	pub := &capturingPublisher{}
	svc := NewInquiryService(newFakeFactory(store), pub, nopLogger{})

	res, err := svc.SubmitPublic(context.Background(), rescue.Slug, &dto.SubmitInquiryRequest{
		AnimalId:     animal.Id,
		AdopterName:  "Sam Doe",
		AdopterEmail: "sam@example.com",
		Message:      "We would love to meet Pepper.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.TrackingToken)
	require.Len(t, store.inquiries, 1)
	assert.Equal(t, entity.InquiryNew, store.inquiries[0].Status)
	require.Len(t, store.inquiryEvents, 1)
	assert.Equal(t, entity.EventSystem, store.inquiryEvents[0].EventType)
	assert.Equal(t, uuid.Nil, store.inquiryEvents[0].ActorId)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeInquiryCreated, pub.published[0].EventType())
}

func TestSubmitPublicRejectsHiddenRescue(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.rescues[0].IsPublic = false
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	_, err := svc.SubmitPublic(context.Background(), rescue.Slug, &dto.SubmitInquiryRequest{
		AnimalId:     animal.Id,
		AdopterName:  "Sam Doe",
		AdopterEmail: "sam@example.com",
		Message:      "We would love to meet Pepper.",
	})

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Empty(t, store.inquiries)
}

func TestSubmitPublicRejectsArchivedAnimal(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.animals[0].IsActive = false
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	_, err := svc.SubmitPublic(context.Background(), rescue.Slug, &dto.SubmitInquiryRequest{
		AnimalId:     animal.Id,
		AdopterName:  "Sam Doe",
		AdopterEmail: "sam@example.com",
		Message:      "We would love to meet Pepper.",
	})

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTrackRespectsExpiry(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryNew)
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	res, err := svc.Track(context.Background(), inquiry.TrackingToken)
	require.NoError(t, err)
	assert.Equal(t, "Pepper", res.AnimalName)
	assert.Equal(t, "new", res.Status)

	expired := time.Now().Add(-time.Minute)
	store.inquiries[0].TokenExpiresAt = &expired
	_, err = svc.Track(context.Background(), inquiry.TrackingToken)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateStatusStampsFirstResponseOnce(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryNew)
	actor := uuid.New()
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})
	authCtx := authContextFor(rescue, entity.RoleStaff)

	res, err := svc.UpdateStatus(context.Background(), authCtx, actor, &dto.UpdateInquiryStatusRequest{
		Id:     inquiry.Id,
		Status: "contacted",
	})
	require.NoError(t, err)
	require.NotNil(t, res.FirstRespondedAt)
	firstStamp := *res.FirstRespondedAt

	// Later transitions leave the stamp alone.
	_, err = svc.UpdateStatus(context.Background(), authCtx, actor, &dto.UpdateInquiryStatusRequest{
		Id:     inquiry.Id,
		Status: "closed",
	})
	require.NoError(t, err)
	require.NotNil(t, store.inquiries[0].FirstRespondedAt)
	assert.Equal(t, firstStamp, *store.inquiries[0].FirstRespondedAt)

	// Both transitions left audit rows.
	assert.Len(t, store.inquiryEvents, 2)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryContacted)
	pub := &capturingPublisher{}
	svc := NewInquiryService(newFakeFactory(store), pub, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), authContextFor(rescue, entity.RoleStaff), uuid.New(), &dto.UpdateInquiryStatusRequest{
		Id:     inquiry.Id,
		Status: "contacted",
	})
	require.NoError(t, err)
	assert.Empty(t, store.inquiryEvents)
	assert.Empty(t, pub.published)
}

func TestUpdateStatusReopenDoesNotStampAgain(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryClosed)
	stamp := time.Now().Add(-24 * time.Hour)
	store.inquiries[0].FirstRespondedAt = &stamp
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})
	authCtx := authContextFor(rescue, entity.RoleStaff)

	// Back to new, then out again: the original stamp survives.
	_, err := svc.UpdateStatus(context.Background(), authCtx, uuid.New(), &dto.UpdateInquiryStatusRequest{Id: inquiry.Id, Status: "new"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), authCtx, uuid.New(), &dto.UpdateInquiryStatusRequest{Id: inquiry.Id, Status: "contacted"})
	require.NoError(t, err)

	require.NotNil(t, store.inquiries[0].FirstRespondedAt)
	assert.Equal(t, stamp, *store.inquiries[0].FirstRespondedAt)
}

func TestUpdateAssignmentRequiresMembership(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryNew)
	outsider := uuid.New()
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	_, err := svc.UpdateAssignment(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.UpdateInquiryAssignmentRequest{
		Id:         inquiry.Id,
		AssignedTo: &outsider,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	member := uuid.New()
	store.memberships = append(store.memberships, &entity.Membership{
		RescueId: rescue.Id, UserId: member, Role: entity.RoleStaff,
	})
	res, err := svc.UpdateAssignment(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.UpdateInquiryAssignmentRequest{
		Id:         inquiry.Id,
		AssignedTo: &member,
	})
	require.NoError(t, err)
	require.NotNil(t, res.AssignedTo)
	assert.Equal(t, member, *res.AssignedTo)
	assert.Len(t, store.inquiryEvents, 1)
	assert.Equal(t, entity.EventAssignmentChange, store.inquiryEvents[0].EventType)
}

func TestArchivePartitionsList(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	first := seedInquiry(store, rescue, animal, entity.InquiryNew)
	seedInquiry(store, rescue, animal, entity.InquiryContacted)
	actor := uuid.New()
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})
	authCtx := authContextFor(rescue, entity.RoleOwner)

	require.NoError(t, svc.Archive(context.Background(), authCtx, actor, first.Id))

	active, err := svc.List(context.Background(), authCtx, &dto.ListInquiriesQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), active.Total)

	archived, err := svc.List(context.Background(), authCtx, &dto.ListInquiriesQuery{Archived: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), archived.Total)
	assert.Equal(t, first.Id, archived.Inquiries[0].Id)
	require.NotNil(t, store.inquiries[0].ArchivedBy)
	assert.Equal(t, actor, *store.inquiries[0].ArchivedBy)

	// Restoring clears the archival stamps.
	require.NoError(t, svc.Restore(context.Background(), authCtx, actor, first.Id))
	assert.False(t, store.inquiries[0].Archived)
	assert.Nil(t, store.inquiries[0].ArchivedAt)
}

func TestBulkStatusSkipsUnchangedAndLogsEvents(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	a := seedInquiry(store, rescue, animal, entity.InquiryNew)
	b := seedInquiry(store, rescue, animal, entity.InquiryContacted)
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	res, err := svc.BulkStatus(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.BulkInquiryRequest{
		Ids:    []uuid.UUID{a.Id, b.Id},
		Status: "contacted",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)
	assert.Len(t, store.inquiryEvents, 1)
	// The row that left "new" got its first-response stamp.
	for _, i := range store.inquiries {
		if i.Id == a.Id {
			assert.NotNil(t, i.FirstRespondedAt)
		}
	}
}

func TestBulkArchiveIgnoresForeignInquiries(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	other, otherAnimal := seedRescueWithAnimal(store)
	foreign := seedInquiry(store, other, otherAnimal, entity.InquiryNew)
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	// Foreign and nonexistent ids archive nothing and leave no events
	// behind in the other tenant's timeline.
	res, err := svc.BulkArchive(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.BulkInquiryRequest{
		Ids: []uuid.UUID{foreign.Id, uuid.New()},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Affected)
	assert.Empty(t, store.inquiryEvents)
	assert.False(t, foreign.Archived)

	// Own rows toggle, already-archived rows are skipped, and exactly one
	// event is written per row actually archived.
	mine := seedInquiry(store, rescue, animal, entity.InquiryNew)
	done := seedInquiry(store, rescue, animal, entity.InquiryClosed)
	done.Archived = true
	res, err = svc.BulkArchive(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.BulkInquiryRequest{
		Ids: []uuid.UUID{mine.Id, done.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)
	assert.Len(t, store.inquiryEvents, 1)
	for _, i := range store.inquiries {
		if i.Id == mine.Id {
			assert.True(t, i.Archived)
			assert.NotNil(t, i.ArchivedBy)
		}
	}
}

func TestShowFlagsDuplicateInquiries(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	inquiry := seedInquiry(store, rescue, animal, entity.InquiryNew)
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})
	authCtx := authContextFor(rescue, entity.RoleStaff)

	detail, err := svc.Show(context.Background(), authCtx, inquiry.Id)
	require.NoError(t, err)
	assert.False(t, detail.DuplicateHint)

	// Second inquiry from the same adopter for the same animal inside the
	// lookback window.
	dup := seedInquiry(store, rescue, animal, entity.InquiryNew)
	detail, err = svc.Show(context.Background(), authCtx, dup.Id)
	require.NoError(t, err)
	assert.True(t, detail.DuplicateHint)
}

func TestCountsSplitsRecentAndStale(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	seedInquiry(store, rescue, animal, entity.InquiryNew) // one hour old, recent but not stale
	stale := seedInquiry(store, rescue, animal, entity.InquiryNew)
	store.inquiries[1].CreatedAt = time.Now().Add(-3 * 24 * time.Hour)
	_ = stale
	svc := NewInquiryService(newFakeFactory(store), &capturingPublisher{}, nopLogger{})

	counts, err := svc.Counts(context.Background(), authContextFor(rescue, entity.RoleStaff))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Recent)
	assert.Equal(t, int64(1), counts.NoResponse)
}
