package unitofwork

import (
	"context"

	"rescueos-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	RescueRepository() contract.RescueRepository
	MembershipRepository() contract.MembershipRepository
	InvitationRepository() contract.InvitationRepository

	AnimalRepository() contract.AnimalRepository
	AnimalPhotoRepository() contract.AnimalPhotoRepository
	StageEventRepository() contract.StageEventRepository

	InquiryRepository() contract.InquiryRepository
	InquiryEventRepository() contract.InquiryEventRepository
	InquiryNoteRepository() contract.InquiryNoteRepository

	EmailLogRepository() contract.EmailLogRepository
	TemplateRepository() contract.TemplateRepository

	AbuseReportRepository() contract.AbuseReportRepository
	ModerationActionRepository() contract.ModerationActionRepository
	VerificationRequestRepository() contract.VerificationRequestRepository
}
