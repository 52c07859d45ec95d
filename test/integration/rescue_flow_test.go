package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/internal/service"
	"rescueos-be/pkg/database"
	"rescueos-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by DB_CONNECTION_STRING and
// migrates the schema. Tests are skipped when the variable is unset so the
// suite stays runnable without infrastructure.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Profile{},
		&model.Rescue{},
		&model.RescueMember{},
		&model.RescueInvitation{},
		&model.Animal{},
		&model.AnimalPhoto{},
		&model.AnimalStageEvent{},
		&model.Inquiry{},
		&model.InquiryEvent{},
		&model.InquiryNote{},
		&model.EmailLog{},
		&model.SavedReplyTemplate{},
		&model.AbuseReport{},
		&model.ModerationAction{},
		&model.VerificationRequest{},
	))
	return db
}

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
}

func testStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestOnboardAndInquiryFlow(t *testing.T) {
	db := openTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	log := testLogger(t)

	rescueSvc := service.NewRescueService(factory, log)
	inquirySvc := service.NewInquiryService(factory, service.NewPublisherService(nil, log), log)

	ownerId := uuid.New()
	suffix := time.Now().UnixNano()

	rescue, err := rescueSvc.Onboard(context.Background(), ownerId, &dto.OnboardRescueRequest{
		Name:         fmt.Sprintf("Flow Test Rescue %d", suffix),
		ContactEmail: fmt.Sprintf("flow-%d@example.com", suffix),
		IsPublic:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rescue.Slug)

	// The owner membership must resolve through the auth context.
	authCtxSvc := service.NewAuthContextService(factory, factory, log)
	authCtx, err := authCtxSvc.Resolve(context.Background(), ownerId)
	require.NoError(t, err)
	require.True(t, authCtx.HasRescue())
	assert.Equal(t, entity.RoleOwner, authCtx.Role)

	// List an animal and take a public inquiry against it.
	animalSvc := service.NewAnimalService(factory, testStorage(t), log)
	animal, err := animalSvc.Create(context.Background(), authCtx, ownerId, &dto.CreateAnimalRequest{
		Name:    "Flow Pup",
		Species: "dog",
	})
	require.NoError(t, err)
	assert.Equal(t, "intake", animal.PipelineStage)

	submitted, err := inquirySvc.SubmitPublic(context.Background(), rescue.Slug, &dto.SubmitInquiryRequest{
		AnimalId:     animal.Id,
		AdopterName:  "Integration Adopter",
		AdopterEmail: fmt.Sprintf("adopter-%d@example.com", suffix),
		Message:      "I would like to meet this dog, please and thank you.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, submitted.TrackingToken)

	// Track, then move the status and confirm the first-response stamp.
	tracked, err := inquirySvc.Track(context.Background(), submitted.TrackingToken)
	require.NoError(t, err)
	assert.Equal(t, "new", tracked.Status)

	updated, err := inquirySvc.UpdateStatus(context.Background(), authCtx, ownerId, &dto.UpdateInquiryStatusRequest{
		Id:     submitted.Id,
		Status: "contacted",
	})
	require.NoError(t, err)
	assert.NotNil(t, updated.FirstRespondedAt)

	detail, err := inquirySvc.Show(context.Background(), authCtx, submitted.Id)
	require.NoError(t, err)
	// Submission system event plus the status change.
	assert.GreaterOrEqual(t, len(detail.Events), 2)
}

func TestUnitOfWorkRollback(t *testing.T) {
	db := openTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	rescue := &entity.Rescue{
		Id:                 uuid.New(),
		Name:               "Rollback Rescue",
		Slug:               fmt.Sprintf("rollback-%d", time.Now().UnixNano()),
		ContactEmail:       "rollback@example.com",
		PlanTier:           entity.PlanTierFree,
		VerificationStatus: entity.VerificationUnverified,
		CreatedAt:          time.Now(),
	}
	require.NoError(t, uow.RescueRepository().Create(ctx, rescue))
	require.NoError(t, uow.Rollback())

	// The row must not survive the rollback.
	fresh := factory.NewUnitOfWork(ctx)
	found, err := fresh.RescueRepository().FindOne(ctx, specification.BySlug{Slug: rescue.Slug})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTeamInvitationFlow(t *testing.T) {
	db := openTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	log := testLogger(t)

	rescueSvc := service.NewRescueService(factory, log)
	teamSvc := service.NewTeamService(factory, service.NewPublisherService(nil, log), log)
	authCtxSvc := service.NewAuthContextService(factory, factory, log)

	ownerId := uuid.New()
	suffix := time.Now().UnixNano()
	_, err := rescueSvc.Onboard(context.Background(), ownerId, &dto.OnboardRescueRequest{
		Name:         fmt.Sprintf("Team Flow Rescue %d", suffix),
		ContactEmail: fmt.Sprintf("team-%d@example.com", suffix),
	})
	require.NoError(t, err)

	authCtx, err := authCtxSvc.Resolve(context.Background(), ownerId)
	require.NoError(t, err)

	created, err := teamSvc.CreateInvitation(context.Background(), authCtx, ownerId, &dto.CreateInvitationRequest{
		Email: fmt.Sprintf("invitee-%d@example.com", suffix),
		Role:  "staff",
	})
	require.NoError(t, err)

	joinerId := uuid.New()
	require.NoError(t, teamSvc.AcceptInvitation(context.Background(), joinerId, &dto.AcceptInvitationRequest{
		Token: created.Token,
	}))

	// The token is spent.
	err = teamSvc.AcceptInvitation(context.Background(), uuid.New(), &dto.AcceptInvitationRequest{
		Token: created.Token,
	})
	require.Error(t, err)

	joinerCtx, err := authCtxSvc.Resolve(context.Background(), joinerId)
	require.NoError(t, err)
	require.True(t, joinerCtx.HasRescue())
	assert.Equal(t, entity.RoleStaff, joinerCtx.Role)
}
