package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserID filters memberships by user.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// PendingInvitation keeps invitations that are neither accepted nor canceled.
type PendingInvitation struct{}

func (s PendingInvitation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("accepted_at IS NULL AND canceled_at IS NULL")
}

// UnexpiredAt keeps invitations whose expiry is still in the future.
type UnexpiredAt struct {
	Now time.Time
}

func (s UnexpiredAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}

// BySlug filters rescues by their unique public slug.
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}
