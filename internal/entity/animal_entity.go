package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnimalStatus string

const (
	AnimalAvailable AnimalStatus = "available"
	AnimalHold      AnimalStatus = "hold"
	AnimalAdopted   AnimalStatus = "adopted"
)

func ValidAnimalStatus(status string) bool {
	switch AnimalStatus(status) {
	case AnimalAvailable, AnimalHold, AnimalAdopted:
		return true
	}
	return false
}

type PipelineStage string

const (
	StageIntake    PipelineStage = "intake"
	StageFoster    PipelineStage = "foster"
	StageAvailable PipelineStage = "available"
	StageHold      PipelineStage = "hold"
	StageAdopted   PipelineStage = "adopted"
)

func ValidPipelineStage(stage string) bool {
	switch PipelineStage(stage) {
	case StageIntake, StageFoster, StageAvailable, StageHold, StageAdopted:
		return true
	}
	return false
}

// StatusForStage is the derivation rule keeping the coarse status consistent
// with the pipeline stage: adopted stage means adopted status, hold stage
// means hold status, every other stage reads as available.
func StatusForStage(stage PipelineStage) AnimalStatus {
	switch stage {
	case StageAdopted:
		return AnimalAdopted
	case StageHold:
		return AnimalHold
	default:
		return AnimalAvailable
	}
}

// StageForStatus defaults a stage when only a status is supplied, e.g. on
// create. An explicit stage always wins over this mapping.
func StageForStatus(status AnimalStatus) PipelineStage {
	switch status {
	case AnimalAdopted:
		return StageAdopted
	case AnimalHold:
		return StageHold
	default:
		return StageAvailable
	}
}

// Animal belongs to exactly one rescue and is archived, never deleted.
type Animal struct {
	Id            uuid.UUID
	RescueId      uuid.UUID
	Name          string
	Species       string
	Breed         *string
	Age           *string
	Sex           *string
	Description   *string
	Status        AnimalStatus
	PipelineStage PipelineStage
	Tags          []string
	IsActive      bool
	Photos        []*AnimalPhoto
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type AnimalPhoto struct {
	Id        uuid.UUID
	AnimalId  uuid.UUID
	ImageURL  string
	SortOrder int
	CreatedAt time.Time
}

// StageEvent is an immutable log row written on every pipeline stage change.
type StageEvent struct {
	Id        uuid.UUID
	AnimalId  uuid.UUID
	FromStage PipelineStage
	ToStage   PipelineStage
	ChangedBy uuid.UUID
	CreatedAt time.Time
}
