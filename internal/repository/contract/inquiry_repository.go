package contract

import (
	"context"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/specification"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Inquiry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Inquiry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type InquiryEventRepository interface {
	Create(ctx context.Context, event *entity.InquiryEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryEvent, error)
}

type InquiryNoteRepository interface {
	Create(ctx context.Context, note *entity.InquiryNote) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryNote, error)
}
