package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnimalRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=120"`
	Species     string   `json:"species" validate:"required,min=2,max=60"`
	Breed       string   `json:"breed" validate:"omitempty,max=120"`
	Age         string   `json:"age" validate:"omitempty,max=60"`
	Sex         string   `json:"sex" validate:"omitempty,oneof=male female unknown"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=40"`
	Stage       string   `json:"stage" validate:"omitempty,oneof=intake foster available hold adopted"`
	Status      string   `json:"status" validate:"omitempty,oneof=available hold adopted"`
}

type UpdateAnimalRequest struct {
	Id          uuid.UUID
	Name        string   `json:"name" validate:"required,min=1,max=120"`
	Species     string   `json:"species" validate:"required,min=2,max=60"`
	Breed       string   `json:"breed" validate:"omitempty,max=120"`
	Age         string   `json:"age" validate:"omitempty,max=60"`
	Sex         string   `json:"sex" validate:"omitempty,oneof=male female unknown"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=40"`
	Stage       string   `json:"stage" validate:"omitempty,oneof=intake foster available hold adopted"`
	Status      string   `json:"status" validate:"omitempty,oneof=available hold adopted"`
}

type MoveStageRequest struct {
	Id    uuid.UUID
	Stage string `json:"stage" validate:"required,oneof=intake foster available hold adopted"`
}

type BulkAnimalRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
	// Status only applies to the bulk status operation.
	Status string `json:"status" validate:"omitempty,oneof=available hold adopted"`
}

type BulkResult struct {
	Affected int64 `json:"affected"`
}

// ListAnimalsQuery carries the dashboard list filters. Every predicate is
// applied in the store query before the pagination window.
type ListAnimalsQuery struct {
	Search    string `query:"search"`
	Status    string `query:"status" validate:"omitempty,oneof=available hold adopted"`
	Species   string `query:"species"`
	Inquiries string `query:"inquiries" validate:"omitempty,oneof=has none"`
	Sort      string `query:"sort" validate:"omitempty,oneof=newest oldest most_inquiries longest_listed"`
	Archived  bool   `query:"archived"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
}

type AnimalPhotoResponse struct {
	Id        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	SortOrder int       `json:"sort_order"`
}

type AnimalResponse struct {
	Id            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Species       string                `json:"species"`
	Breed         *string               `json:"breed,omitempty"`
	Age           *string               `json:"age,omitempty"`
	Sex           *string               `json:"sex,omitempty"`
	Description   *string               `json:"description,omitempty"`
	Status        string                `json:"status"`
	PipelineStage string                `json:"pipeline_stage"`
	Tags          []string              `json:"tags"`
	IsActive      bool                  `json:"is_active"`
	InquiryCount  int64                 `json:"inquiry_count"`
	Photos        []AnimalPhotoResponse `json:"photos"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

type AnimalListResponse struct {
	Animals  []AnimalResponse `json:"animals"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type StageEventResponse struct {
	Id        uuid.UUID `json:"id"`
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	ChangedBy uuid.UUID `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ReorderPhotoRequest struct {
	PhotoId   uuid.UUID `json:"photo_id" validate:"required"`
	Direction string    `json:"direction" validate:"required,oneof=up down"`
}
