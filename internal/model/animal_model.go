package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Animal struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RescueId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(120);not null"`
	Species       string    `gorm:"type:varchar(60);not null;index"`
	Breed         *string   `gorm:"type:varchar(120)"`
	Age           *string   `gorm:"type:varchar(60)"`
	Sex           *string   `gorm:"type:varchar(20)"`
	Description   *string   `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'available';index"`
	PipelineStage string    `gorm:"type:varchar(20);not null;default:'available'"`
	Tags          datatypes.JSON
	IsActive      bool          `gorm:"not null;default:true;index"`
	Photos        []AnimalPhoto `gorm:"foreignKey:AnimalId"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

func (Animal) TableName() string {
	return "animals"
}

type AnimalPhoto struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL  string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AnimalPhoto) TableName() string {
	return "animal_photos"
}

type AnimalStageEvent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId  uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStage string    `gorm:"type:varchar(20);not null"`
	ToStage   string    `gorm:"type:varchar(20);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AnimalStageEvent) TableName() string {
	return "animal_stage_events"
}
