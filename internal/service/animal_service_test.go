package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnimalService(t *testing.T, store *fakeStore) IAnimalService {
	t.Helper()
	objects, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewAnimalService(newFakeFactory(store), objects, nopLogger{})
}

func TestDeriveStageStatus(t *testing.T) {
	tests := []struct {
		stage, status string
		wantStage     entity.PipelineStage
		wantStatus    entity.AnimalStatus
	}{
		{"", "", entity.StageIntake, entity.AnimalAvailable},
		{"foster", "", entity.StageFoster, entity.AnimalAvailable},
		{"adopted", "", entity.StageAdopted, entity.AnimalAdopted},
		{"hold", "", entity.StageHold, entity.AnimalHold},
		{"", "adopted", entity.StageAdopted, entity.AnimalAdopted},
		{"", "hold", entity.StageHold, entity.AnimalHold},
		{"", "available", entity.StageAvailable, entity.AnimalAvailable},
		// Explicit stage wins over explicit status.
		{"foster", "adopted", entity.StageFoster, entity.AnimalAvailable},
	}
	for _, tt := range tests {
		stage, status := deriveStageStatus(tt.stage, tt.status)
		if stage != tt.wantStage || status != tt.wantStatus {
			t.Errorf("deriveStageStatus(%q, %q) = %v/%v, want %v/%v",
				tt.stage, tt.status, stage, status, tt.wantStage, tt.wantStatus)
		}
	}
}

func TestCreateAnimalRequiresManagerRole(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	_, err := svc.Create(context.Background(), authContextFor(rescue, entity.RoleStaff), uuid.New(), &dto.CreateAnimalRequest{
		Name: "Waffle", Species: "dog",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	res, err := svc.Create(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.CreateAnimalRequest{
		Name: "Waffle", Species: "dog",
	})
	require.NoError(t, err)
	assert.Equal(t, "intake", res.PipelineStage)
	assert.Equal(t, "available", res.Status)
	assert.True(t, res.IsActive)
}

func TestMoveStageWritesEvent(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.animals[0].PipelineStage = entity.StageAvailable
	actor := uuid.New()
	svc := newAnimalService(t, store)
	authCtx := authContextFor(rescue, entity.RoleStaff)

	res, err := svc.MoveStage(context.Background(), authCtx, actor, &dto.MoveStageRequest{
		Id: animal.Id, Stage: "adopted",
	})
	require.NoError(t, err)
	assert.Equal(t, "adopted", res.PipelineStage)
	assert.Equal(t, "adopted", res.Status)

	require.Len(t, store.stageEvents, 1)
	assert.Equal(t, entity.StageAvailable, store.stageEvents[0].FromStage)
	assert.Equal(t, entity.StageAdopted, store.stageEvents[0].ToStage)
	assert.Equal(t, actor, store.stageEvents[0].ChangedBy)

	// Moving to the current stage is a no-op with no event.
	_, err = svc.MoveStage(context.Background(), authCtx, actor, &dto.MoveStageRequest{
		Id: animal.Id, Stage: "adopted",
	})
	require.NoError(t, err)
	assert.Len(t, store.stageEvents, 1)
}

func TestMoveStageRejectsUnknownStage(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	_, err := svc.MoveStage(context.Background(), authContextFor(rescue, entity.RoleStaff), uuid.New(), &dto.MoveStageRequest{
		Id: animal.Id, Stage: "quarantine",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateAnimalRecordsStageTransition(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.animals[0].PipelineStage = entity.StageIntake
	svc := newAnimalService(t, store)

	res, err := svc.Update(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.UpdateAnimalRequest{
		Id: animal.Id, Name: "Pepper", Species: "dog", Stage: "foster",
	})
	require.NoError(t, err)
	assert.Equal(t, "foster", res.PipelineStage)
	assert.Len(t, store.stageEvents, 1)
}

func TestUpdateWithoutStageOrStatusKeepsPair(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.animals[0].PipelineStage = entity.StageAdopted
	store.animals[0].Status = entity.AnimalAdopted
	svc := newAnimalService(t, store)

	// A rename that touches neither stage nor status must not drag the
	// animal back to the intake defaults or log a transition.
	res, err := svc.Update(context.Background(), authContextFor(rescue, entity.RoleAdmin), uuid.New(), &dto.UpdateAnimalRequest{
		Id: animal.Id, Name: "Pepper Jr", Species: "dog",
	})
	require.NoError(t, err)
	assert.Equal(t, "adopted", res.PipelineStage)
	assert.Equal(t, "adopted", res.Status)
	assert.Empty(t, store.stageEvents)
}

func TestBulkStatusSkipsEventsForUnchangedStage(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	store.animals[0].PipelineStage = entity.StageIntake
	second := &entity.Animal{
		Id:            uuid.New(),
		RescueId:      rescue.Id,
		Name:          "Maple",
		Species:       "cat",
		Status:        entity.AnimalAdopted,
		PipelineStage: entity.StageAdopted,
		IsActive:      false,
	}
	store.animals = append(store.animals, second)
	svc := newAnimalService(t, store)

	res, err := svc.BulkStatus(context.Background(), authContextFor(rescue, entity.RoleOwner), uuid.New(), &dto.BulkAnimalRequest{
		Ids:    []uuid.UUID{animal.Id, second.Id},
		Status: "adopted",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Affected)

	// Only the animal that actually changed stage gets a log row.
	require.Len(t, store.stageEvents, 1)
	assert.Equal(t, animal.Id, store.stageEvents[0].AnimalId)

	// Bulk status reactivates archived rows.
	assert.True(t, store.animals[1].IsActive)
}

func TestBulkArchiveForbiddenForStaff(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	_, err := svc.BulkArchive(context.Background(), authContextFor(rescue, entity.RoleStaff), &dto.BulkAnimalRequest{
		Ids: []uuid.UUID{animal.Id},
	})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	res, err := svc.BulkArchive(context.Background(), authContextFor(rescue, entity.RoleAdmin), &dto.BulkAnimalRequest{
		Ids: []uuid.UUID{animal.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)
	assert.False(t, store.animals[0].IsActive)
}

func TestListAnimalsPaginatesAndPartitions(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	store.animals = nil
	for i := 0; i < 25; i++ {
		store.animals = append(store.animals, &entity.Animal{
			Id:            uuid.New(),
			RescueId:      rescue.Id,
			Name:          fmt.Sprintf("animal-%02d", i),
			Species:       "dog",
			Status:        entity.AnimalAvailable,
			PipelineStage: entity.StageAvailable,
			IsActive:      i%5 != 0, // every fifth is archived
			CreatedAt:     time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	svc := newAnimalService(t, store)
	authCtx := authContextFor(rescue, entity.RoleStaff)

	active, err := svc.List(context.Background(), authCtx, &dto.ListAnimalsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(20), active.Total)
	assert.Len(t, active.Animals, 20)

	archived, err := svc.List(context.Background(), authCtx, &dto.ListAnimalsQuery{Archived: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5), archived.Total)

	page2, err := svc.List(context.Background(), authCtx, &dto.ListAnimalsQuery{Page: 2})
	require.NoError(t, err)
	assert.Empty(t, page2.Animals)
	assert.Equal(t, 2, page2.Page)
}

func TestListAnimalsSearchFilter(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	res, err := svc.List(context.Background(), authContextFor(rescue, entity.RoleStaff), &dto.ListAnimalsQuery{Search: "pep"})
	require.NoError(t, err)
	require.Len(t, res.Animals, 1)
	assert.Equal(t, "Pepper", res.Animals[0].Name)

	res, err = svc.List(context.Background(), authContextFor(rescue, entity.RoleStaff), &dto.ListAnimalsQuery{Search: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, res.Animals)
}

func seedPhotos(store *fakeStore, animal *entity.Animal, n int) []*entity.AnimalPhoto {
	photos := make([]*entity.AnimalPhoto, 0, n)
	for i := 0; i < n; i++ {
		p := &entity.AnimalPhoto{
			Id:        uuid.New(),
			AnimalId:  animal.Id,
			ImageURL:  fmt.Sprintf("/uploads/%s/photo-%d.jpg", animal.Id, i),
			SortOrder: i,
		}
		photos = append(photos, p)
		store.photos = append(store.photos, p)
	}
	return photos
}

func TestAddPhotoStoresFileAndRecord(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	res, err := svc.AddPhoto(context.Background(), authContextFor(rescue, entity.RoleStaff), animal.Id, "pepper.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ImageURL, "/uploads/"))
	assert.Equal(t, 0, res.SortOrder)
	require.Len(t, store.photos, 1)
}

func TestReorderPhotoSwapsNeighbors(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	photos := seedPhotos(store, store.animals[0], 3)
	svc := newAnimalService(t, store)
	authCtx := authContextFor(rescue, entity.RoleStaff)

	require.NoError(t, svc.ReorderPhoto(context.Background(), authCtx, animal.Id, &dto.ReorderPhotoRequest{
		PhotoId: photos[1].Id, Direction: "up",
	}))
	assert.Equal(t, 1, store.photos[0].SortOrder)
	assert.Equal(t, 0, store.photos[1].SortOrder)

	// The photo now in the first slot cannot move further up; sort orders
	// stay put.
	require.NoError(t, svc.ReorderPhoto(context.Background(), authCtx, animal.Id, &dto.ReorderPhotoRequest{
		PhotoId: photos[1].Id, Direction: "up",
	}))
	assert.Equal(t, 1, store.photos[0].SortOrder)
	assert.Equal(t, 0, store.photos[1].SortOrder)
}

func TestDeletePhotoRemovesRecord(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	photos := seedPhotos(store, store.animals[0], 2)
	svc := newAnimalService(t, store)

	require.NoError(t, svc.DeletePhoto(context.Background(), authContextFor(rescue, entity.RoleStaff), animal.Id, photos[0].Id))
	require.Len(t, store.photos, 1)
	assert.Equal(t, photos[1].Id, store.photos[0].Id)

	err := svc.DeletePhoto(context.Background(), authContextFor(rescue, entity.RoleStaff), animal.Id, photos[0].Id)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPublicListHidesPrivateRescue(t *testing.T) {
	store := newFakeStore()
	rescue, _ := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	res, err := svc.PublicList(context.Background(), rescue.Slug, &dto.ListAnimalsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	assert.Equal(t, publicPageSize, res.PageSize)

	store.rescues[0].IsPublic = false
	_, err = svc.PublicList(context.Background(), rescue.Slug, &dto.ListAnimalsQuery{})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPublicShowExcludesArchivedAnimals(t *testing.T) {
	store := newFakeStore()
	rescue, animal := seedRescueWithAnimal(store)
	svc := newAnimalService(t, store)

	res, err := svc.PublicShow(context.Background(), rescue.Slug, animal.Id)
	require.NoError(t, err)
	assert.Equal(t, "Pepper", res.Name)

	store.animals[0].IsActive = false
	_, err = svc.PublicShow(context.Background(), rescue.Slug, animal.Id)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
