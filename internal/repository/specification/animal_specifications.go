package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameSearch matches animal names case-insensitively on a substring.
type NameSearch struct {
	Term string
}

func (s NameSearch) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Term+"%")
}

// SpeciesLike matches the species column on a case-insensitive substring.
type SpeciesLike struct {
	Species string
}

func (s SpeciesLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("species ILIKE ?", "%"+s.Species+"%")
}

// ActiveIs filters on the archival flag.
type ActiveIs struct {
	Active bool
}

func (s ActiveIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", s.Active)
}

// StatusIs filters animals or inquiries by their status column.
type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// InquiryCountCmp filters animals by their inquiry aggregate. All filter
// predicates run store-side so pagination windows stay honest.
type InquiryCountCmp struct {
	HasInquiries bool
}

func (s InquiryCountCmp) Apply(db *gorm.DB) *gorm.DB {
	sub := "(SELECT COUNT(*) FROM inquiries WHERE inquiries.animal_id = animals.id)"
	if s.HasInquiries {
		return db.Where(sub + " > 0")
	}
	return db.Where(sub + " = 0")
}

// OrderByInquiryCount sorts animals by their inquiry aggregate, newest first
// within ties.
type OrderByInquiryCount struct{}

func (s OrderByInquiryCount) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Order("(SELECT COUNT(*) FROM inquiries WHERE inquiries.animal_id = animals.id) DESC").
		Order("created_at DESC")
}

// ByAnimalID scopes photo, stage-event and inquiry queries to one animal.
type ByAnimalID struct {
	AnimalID uuid.UUID
}

func (s ByAnimalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("animal_id = ?", s.AnimalID)
}
