package mapper

import (
	"encoding/json"
	"time"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/model"

	"gorm.io/datatypes"
)

type AnimalMapper struct{}

func NewAnimalMapper() *AnimalMapper {
	return &AnimalMapper{}
}

func (m *AnimalMapper) ToEntity(a *model.Animal) *entity.Animal {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(a.Tags) > 0 {
		// Malformed tag payloads degrade to an empty list rather than failing
		// the whole read.
		_ = json.Unmarshal(a.Tags, &tags)
	}

	photos := make([]*entity.AnimalPhoto, len(a.Photos))
	for i := range a.Photos {
		photos[i] = m.PhotoToEntity(&a.Photos[i])
	}

	return &entity.Animal{
		Id:            a.Id,
		RescueId:      a.RescueId,
		Name:          a.Name,
		Species:       a.Species,
		Breed:         a.Breed,
		Age:           a.Age,
		Sex:           a.Sex,
		Description:   a.Description,
		Status:        entity.AnimalStatus(a.Status),
		PipelineStage: entity.PipelineStage(a.PipelineStage),
		Tags:          tags,
		IsActive:      a.IsActive,
		Photos:        photos,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *AnimalMapper) ToModel(a *entity.Animal) *model.Animal {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	var tags datatypes.JSON
	if a.Tags != nil {
		raw, _ := json.Marshal(a.Tags)
		tags = datatypes.JSON(raw)
	}

	return &model.Animal{
		Id:            a.Id,
		RescueId:      a.RescueId,
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
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *AnimalMapper) ToEntities(animals []*model.Animal) []*entity.Animal {
	entities := make([]*entity.Animal, len(animals))
	for i, a := range animals {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AnimalMapper) PhotoToEntity(p *model.AnimalPhoto) *entity.AnimalPhoto {
	if p == nil {
		return nil
	}
	return &entity.AnimalPhoto{
		Id:        p.Id,
		AnimalId:  p.AnimalId,
		ImageURL:  p.ImageURL,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

func (m *AnimalMapper) PhotoToModel(p *entity.AnimalPhoto) *model.AnimalPhoto {
	if p == nil {
		return nil
	}
	return &model.AnimalPhoto{
		Id:        p.Id,
		AnimalId:  p.AnimalId,
		ImageURL:  p.ImageURL,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

func (m *AnimalMapper) PhotosToEntities(photos []*model.AnimalPhoto) []*entity.AnimalPhoto {
	entities := make([]*entity.AnimalPhoto, len(photos))
	for i, p := range photos {
		entities[i] = m.PhotoToEntity(p)
	}
	return entities
}

func (m *AnimalMapper) StageEventToEntity(e *model.AnimalStageEvent) *entity.StageEvent {
	if e == nil {
		return nil
	}
	return &entity.StageEvent{
		Id:        e.Id,
		AnimalId:  e.AnimalId,
		FromStage: entity.PipelineStage(e.FromStage),
		ToStage:   entity.PipelineStage(e.ToStage),
		ChangedBy: e.ChangedBy,
		CreatedAt: e.CreatedAt,
	}
}

func (m *AnimalMapper) StageEventToModel(e *entity.StageEvent) *model.AnimalStageEvent {
	if e == nil {
		return nil
	}
	return &model.AnimalStageEvent{
		Id:        e.Id,
		AnimalId:  e.AnimalId,
		FromStage: string(e.FromStage),
		ToStage:   string(e.ToStage),
		ChangedBy: e.ChangedBy,
		CreatedAt: e.CreatedAt,
	}
}

func (m *AnimalMapper) StageEventsToEntities(events []*model.AnimalStageEvent) []*entity.StageEvent {
	entities := make([]*entity.StageEvent, len(events))
	for i, e := range events {
		entities[i] = m.StageEventToEntity(e)
	}
	return entities
}
