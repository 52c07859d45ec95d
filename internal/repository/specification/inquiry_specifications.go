package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArchivedIs partitions the active and archived inquiry views.
type ArchivedIs struct {
	Archived bool
}

func (s ArchivedIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("archived = ?", s.Archived)
}

// AssignedToUser filters inquiries by assignee.
type AssignedToUser struct {
	UserID uuid.UUID
}

func (s AssignedToUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assigned_to = ?", s.UserID)
}

// Unassigned keeps inquiries with no assignee.
type Unassigned struct{}

func (s Unassigned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assigned_to IS NULL")
}

// StaleNew keeps inquiries still in "new" past the response window.
type StaleNew struct {
	Cutoff time.Time
}

func (s StaleNew) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND created_at <= ?", "new", s.Cutoff)
}

// ByAdopterEmail matches the adopter email case-insensitively. Used by the
// duplicate-inquiry lookback.
type ByAdopterEmail struct {
	Email string
}

func (s ByAdopterEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(adopter_email) = LOWER(?)", s.Email)
}

// AnimalSpecies filters inquiries by the species of the referenced animal.
type AnimalSpecies struct {
	Species string
}

func (s AnimalSpecies) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("animal_id IN (SELECT id FROM animals WHERE species ILIKE ?)", "%"+s.Species+"%")
}

// ExcludeID drops one row, e.g. the inquiry itself during duplicate lookup.
type ExcludeID struct {
	ID uuid.UUID
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}
