package unitofwork

import (
	"context"
	"fmt"

	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

// getDB returns the active transaction when one has been started, the
// plain connection otherwise. Repositories built from this UoW share it.
func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository accessors

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RescueRepository() contract.RescueRepository {
	return implementation.NewRescueRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MembershipRepository() contract.MembershipRepository {
	return implementation.NewMembershipRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InvitationRepository() contract.InvitationRepository {
	return implementation.NewInvitationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnimalRepository() contract.AnimalRepository {
	return implementation.NewAnimalRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnimalPhotoRepository() contract.AnimalPhotoRepository {
	return implementation.NewAnimalPhotoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StageEventRepository() contract.StageEventRepository {
	return implementation.NewStageEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InquiryRepository() contract.InquiryRepository {
	return implementation.NewInquiryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InquiryEventRepository() contract.InquiryEventRepository {
	return implementation.NewInquiryEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InquiryNoteRepository() contract.InquiryNoteRepository {
	return implementation.NewInquiryNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmailLogRepository() contract.EmailLogRepository {
	return implementation.NewEmailLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TemplateRepository() contract.TemplateRepository {
	return implementation.NewTemplateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AbuseReportRepository() contract.AbuseReportRepository {
	return implementation.NewAbuseReportRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ModerationActionRepository() contract.ModerationActionRepository {
	return implementation.NewModerationActionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VerificationRequestRepository() contract.VerificationRequestRepository {
	return implementation.NewVerificationRequestRepository(u.getDB())
}
