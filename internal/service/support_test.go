package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"rescueos-be/internal/entity"
	"rescueos-be/internal/repository/contract"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the specification structs the
// services actually issue; anything unrecognized matches everything, which
// keeps the fakes honest about filters under test without reimplementing SQL.

type fakeStore struct {
	profiles      []*entity.Profile
	rescues       []*entity.Rescue
	memberships   []*entity.Membership
	invitations   []*entity.Invitation
	animals       []*entity.Animal
	photos        []*entity.AnimalPhoto
	stageEvents   []*entity.StageEvent
	inquiries     []*entity.Inquiry
	inquiryEvents []*entity.InquiryEvent
	inquiryNotes  []*entity.InquiryNote
	emailLogs     []*entity.EmailLog
	templates     []*entity.SavedReplyTemplate
	reports       []*entity.AbuseReport
	actions       []*entity.ModerationAction
	verifications []*entity.VerificationRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.inTx = true; return nil }
func (u *fakeUow) Commit() error                   { u.inTx = false; return nil }
func (u *fakeUow) Rollback() error                 { u.inTx = false; return nil }

func (u *fakeUow) ProfileRepository() contract.ProfileRepository {
	return &fakeProfileRepo{store: u.store}
}
func (u *fakeUow) RescueRepository() contract.RescueRepository {
	return &fakeRescueRepo{store: u.store}
}
func (u *fakeUow) MembershipRepository() contract.MembershipRepository {
	return &fakeMembershipRepo{store: u.store}
}
func (u *fakeUow) InvitationRepository() contract.InvitationRepository {
	return &fakeInvitationRepo{store: u.store}
}
func (u *fakeUow) AnimalRepository() contract.AnimalRepository {
	return &fakeAnimalRepo{store: u.store}
}
func (u *fakeUow) AnimalPhotoRepository() contract.AnimalPhotoRepository {
	return &fakePhotoRepo{store: u.store}
}
func (u *fakeUow) StageEventRepository() contract.StageEventRepository {
	return &fakeStageEventRepo{store: u.store}
}
func (u *fakeUow) InquiryRepository() contract.InquiryRepository {
	return &fakeInquiryRepo{store: u.store}
}
func (u *fakeUow) InquiryEventRepository() contract.InquiryEventRepository {
	return &fakeInquiryEventRepo{store: u.store}
}
func (u *fakeUow) InquiryNoteRepository() contract.InquiryNoteRepository {
	return &fakeInquiryNoteRepo{store: u.store}
}
func (u *fakeUow) EmailLogRepository() contract.EmailLogRepository {
	return &fakeEmailLogRepo{store: u.store}
}
func (u *fakeUow) TemplateRepository() contract.TemplateRepository {
	return &fakeTemplateRepo{store: u.store}
}
func (u *fakeUow) AbuseReportRepository() contract.AbuseReportRepository {
	return &fakeReportRepo{store: u.store}
}
func (u *fakeUow) ModerationActionRepository() contract.ModerationActionRepository {
	return &fakeActionRepo{store: u.store}
}
func (u *fakeUow) VerificationRequestRepository() contract.VerificationRequestRepository {
	return &fakeVerificationRepo{store: u.store}
}

func paginationWindow(length int, specs []specification.Specification) (int, int) {
	for _, sp := range specs {
		if p, ok := sp.(specification.Pagination); ok {
			start := p.Offset
			if start > length {
				start = length
			}
			end := start + p.Limit
			if p.Limit <= 0 || end > length {
				end = length
			}
			return start, end
		}
	}
	return 0, length
}

// --- profiles ---

type fakeProfileRepo struct{ store *fakeStore }

func profileMatches(p *entity.Profile, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if p.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByEmail:
			if !strings.EqualFold(p.Email, s.Email) {
				return false
			}
		}
	}
	return true
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	c := *p
	r.store.profiles = append(r.store.profiles, &c)
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	for i, existing := range r.store.profiles {
		if existing.Id == p.Id {
			c := *p
			r.store.profiles[i] = &c
		}
	}
	return nil
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	for _, p := range r.store.profiles {
		if profileMatches(p, specs) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.store.profiles {
		if profileMatches(p, specs) {
			c := *p
			out = append(out, &c)
		}
	}
	start, end := paginationWindow(len(out), specs)
	return out[start:end], nil
}

// --- rescues ---

type fakeRescueRepo struct{ store *fakeStore }

func rescueMatches(r *entity.Rescue, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if r.Id != s.ID {
				return false
			}
		case specification.BySlug:
			if r.Slug != s.Slug {
				return false
			}
		}
	}
	return true
}

func (r *fakeRescueRepo) Create(ctx context.Context, rescue *entity.Rescue) error {
	c := *rescue
	r.store.rescues = append(r.store.rescues, &c)
	return nil
}

func (r *fakeRescueRepo) Update(ctx context.Context, rescue *entity.Rescue) error {
	for i, existing := range r.store.rescues {
		if existing.Id == rescue.Id {
			c := *rescue
			r.store.rescues[i] = &c
		}
	}
	return nil
}

func (r *fakeRescueRepo) UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error) {
	var affected int64
	for _, rescue := range r.store.rescues {
		if !rescueMatches(rescue, specs) {
			continue
		}
		affected++
		for field, value := range fields {
			switch field {
			case "plan_tier":
				rescue.PlanTier = entity.PlanTier(value.(string))
			case "subscription_status":
				if value == nil {
					rescue.SubscriptionStatus = nil
				} else {
					v := value.(string)
					rescue.SubscriptionStatus = &v
				}
			case "current_period_end":
				if value == nil {
					rescue.CurrentPeriodEnd = nil
				} else {
					v := value.(time.Time)
					rescue.CurrentPeriodEnd = &v
				}
			case "disabled":
				rescue.Disabled = value.(bool)
			case "disabled_at":
				if value == nil {
					rescue.DisabledAt = nil
				} else {
					v := value.(time.Time)
					rescue.DisabledAt = &v
				}
			case "verification_status":
				rescue.VerificationStatus = entity.VerificationStatus(value.(string))
			case "verified_at":
				if value == nil {
					rescue.VerifiedAt = nil
				} else {
					v := value.(time.Time)
					rescue.VerifiedAt = &v
				}
			}
		}
	}
	return affected, nil
}

func (r *fakeRescueRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rescue, error) {
	for _, rescue := range r.store.rescues {
		if rescueMatches(rescue, specs) {
			c := *rescue
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeRescueRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rescue, error) {
	var out []*entity.Rescue
	for _, rescue := range r.store.rescues {
		if rescueMatches(rescue, specs) {
			c := *rescue
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeRescueRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, _ := r.FindAll(ctx, specs...)
	return int64(len(rows)), nil
}

// --- memberships ---

type fakeMembershipRepo struct{ store *fakeStore }

func membershipMatches(m *entity.Membership, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByRescueID:
			if m.RescueId != s.RescueID {
				return false
			}
		case specification.ByUserID:
			if m.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeMembershipRepo) Upsert(ctx context.Context, m *entity.Membership) error {
	for _, existing := range r.store.memberships {
		if existing.RescueId == m.RescueId && existing.UserId == m.UserId {
			existing.Role = m.Role
			return nil
		}
	}
	c := *m
	r.store.memberships = append(r.store.memberships, &c)
	return nil
}

func (r *fakeMembershipRepo) UpdateRole(ctx context.Context, rescueId, userId uuid.UUID, role entity.MemberRole) error {
	for _, m := range r.store.memberships {
		if m.RescueId == rescueId && m.UserId == userId {
			m.Role = role
		}
	}
	return nil
}

func (r *fakeMembershipRepo) Delete(ctx context.Context, rescueId, userId uuid.UUID) error {
	kept := r.store.memberships[:0]
	for _, m := range r.store.memberships {
		if !(m.RescueId == rescueId && m.UserId == userId) {
			kept = append(kept, m)
		}
	}
	r.store.memberships = kept
	return nil
}

func (r *fakeMembershipRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error) {
	for _, m := range r.store.memberships {
		if membershipMatches(m, specs) {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.store.memberships {
		if membershipMatches(m, specs) {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeMembershipRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, _ := r.FindAll(ctx, specs...)
	return int64(len(rows)), nil
}

// --- invitations ---

type fakeInvitationRepo struct{ store *fakeStore }

func invitationMatches(i *entity.Invitation, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if i.Id != s.ID {
				return false
			}
		case specification.ByRescueID:
			if i.RescueId != s.RescueID {
				return false
			}
		case specification.ByToken:
			if i.Token != s.Token {
				return false
			}
		case specification.ByEmail:
			if !strings.EqualFold(i.Email, s.Email) {
				return false
			}
		case specification.PendingInvitation:
			if i.AcceptedAt != nil || i.CanceledAt != nil {
				return false
			}
		case specification.UnexpiredAt:
			if !i.ExpiresAt.After(s.Now) {
				return false
			}
		}
	}
	return true
}

func (r *fakeInvitationRepo) Create(ctx context.Context, i *entity.Invitation) error {
	c := *i
	r.store.invitations = append(r.store.invitations, &c)
	return nil
}

func (r *fakeInvitationRepo) Update(ctx context.Context, i *entity.Invitation) error {
	for idx, existing := range r.store.invitations {
		if existing.Id == i.Id {
			c := *i
			r.store.invitations[idx] = &c
		}
	}
	return nil
}

func (r *fakeInvitationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invitation, error) {
	for _, i := range r.store.invitations {
		if invitationMatches(i, specs) {
			c := *i
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeInvitationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invitation, error) {
	var out []*entity.Invitation
	for _, i := range r.store.invitations {
		if invitationMatches(i, specs) {
			c := *i
			out = append(out, &c)
		}
	}
	return out, nil
}

// --- animals ---

type fakeAnimalRepo struct{ store *fakeStore }

func animalMatches(a *entity.Animal, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if a.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByRescueID:
			if a.RescueId != s.RescueID {
				return false
			}
		case specification.ActiveIs:
			if a.IsActive != s.Active {
				return false
			}
		case specification.StatusIs:
			if string(a.Status) != s.Status {
				return false
			}
		case specification.NameSearch:
			if !strings.Contains(strings.ToLower(a.Name), strings.ToLower(s.Term)) {
				return false
			}
		case specification.SpeciesLike:
			if !strings.Contains(strings.ToLower(a.Species), strings.ToLower(s.Species)) {
				return false
			}
		}
	}
	return true
}

func (r *fakeAnimalRepo) Create(ctx context.Context, a *entity.Animal) error {
	c := *a
	r.store.animals = append(r.store.animals, &c)
	return nil
}

func (r *fakeAnimalRepo) Update(ctx context.Context, a *entity.Animal) error {
	for i, existing := range r.store.animals {
		if existing.Id == a.Id {
			c := *a
			r.store.animals[i] = &c
		}
	}
	return nil
}

func (r *fakeAnimalRepo) UpdateFields(ctx context.Context, fields map[string]interface{}, specs ...specification.Specification) (int64, error) {
	var affected int64
	for _, a := range r.store.animals {
		if !animalMatches(a, specs) {
			continue
		}
		affected++
		for field, value := range fields {
			switch field {
			case "is_active":
				a.IsActive = value.(bool)
			case "status":
				a.Status = entity.AnimalStatus(value.(string))
			case "pipeline_stage":
				a.PipelineStage = entity.PipelineStage(value.(string))
			}
		}
	}
	return affected, nil
}

func (r *fakeAnimalRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Animal, error) {
	for _, a := range r.store.animals {
		if animalMatches(a, specs) {
			return r.copyAnimal(a), nil
		}
	}
	return nil, nil
}

func (r *fakeAnimalRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Animal, error) {
	var out []*entity.Animal
	for _, a := range r.store.animals {
		if animalMatches(a, specs) {
			out = append(out, r.copyAnimal(a))
		}
	}
	start, end := paginationWindow(len(out), specs)
	return out[start:end], nil
}

// copyAnimal rebuilds the photo list from the photo table, copied row by
// row and ordered by sort order, the way the real repository preloads it.
// Callers mutating the result never touch the seeded fixtures.
func (r *fakeAnimalRepo) copyAnimal(a *entity.Animal) *entity.Animal {
	c := *a
	c.Photos = nil
	for _, p := range r.store.photos {
		if p.AnimalId == a.Id {
			pc := *p
			c.Photos = append(c.Photos, &pc)
		}
	}
	sort.SliceStable(c.Photos, func(i, j int) bool {
		return c.Photos[i].SortOrder < c.Photos[j].SortOrder
	})
	return &c
}

func (r *fakeAnimalRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, a := range r.store.animals {
		if animalMatches(a, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeAnimalRepo) InquiryCounts(ctx context.Context, animalIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, id := range animalIds {
		for _, i := range r.store.inquiries {
			if i.AnimalId == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// --- photos ---

type fakePhotoRepo struct{ store *fakeStore }

func photoMatches(p *entity.AnimalPhoto, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByAnimalID:
			if p.AnimalId != s.AnimalID {
				return false
			}
		}
	}
	return true
}

func (r *fakePhotoRepo) Create(ctx context.Context, p *entity.AnimalPhoto) error {
	c := *p
	r.store.photos = append(r.store.photos, &c)
	return nil
}

func (r *fakePhotoRepo) UpdateSortOrder(ctx context.Context, photoId uuid.UUID, sortOrder int) error {
	for _, p := range r.store.photos {
		if p.Id == photoId {
			p.SortOrder = sortOrder
		}
	}
	return nil
}

func (r *fakePhotoRepo) Delete(ctx context.Context, photoId uuid.UUID) error {
	kept := r.store.photos[:0]
	for _, p := range r.store.photos {
		if p.Id != photoId {
			kept = append(kept, p)
		}
	}
	r.store.photos = kept
	return nil
}

func (r *fakePhotoRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnimalPhoto, error) {
	for _, p := range r.store.photos {
		if photoMatches(p, specs) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakePhotoRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnimalPhoto, error) {
	var out []*entity.AnimalPhoto
	for _, p := range r.store.photos {
		if photoMatches(p, specs) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

// --- stage events ---

type fakeStageEventRepo struct{ store *fakeStore }

func (r *fakeStageEventRepo) Create(ctx context.Context, e *entity.StageEvent) error {
	c := *e
	r.store.stageEvents = append(r.store.stageEvents, &c)
	return nil
}

func (r *fakeStageEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageEvent, error) {
	var out []*entity.StageEvent
	for _, e := range r.store.stageEvents {
		match := true
		for _, sp := range specs {
			if s, ok := sp.(specification.ByAnimalID); ok && e.AnimalId != s.AnimalID {
				match = false
			}
		}
		if match {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

// --- inquiries ---

type fakeInquiryRepo struct{ store *fakeStore }

func inquiryMatches(i *entity.Inquiry, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if i.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if i.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByRescueID:
			if i.RescueId != s.RescueID {
				return false
			}
		case specification.ByAnimalID:
			if i.AnimalId != s.AnimalID {
				return false
			}
		case specification.ByAdopterEmail:
			if !strings.EqualFold(i.AdopterEmail, s.Email) {
				return false
			}
		case specification.ExcludeID:
			if i.Id == s.ID {
				return false
			}
		case specification.ArchivedIs:
			if i.Archived != s.Archived {
				return false
			}
		case specification.StatusIs:
			if string(i.Status) != s.Status {
				return false
			}
		case specification.CreatedAfter:
			if i.CreatedAt.Before(s.Cutoff) {
				return false
			}
		case specification.StaleNew:
			if i.Status != entity.InquiryNew || i.CreatedAt.After(s.Cutoff) {
				return false
			}
		case specification.Unassigned:
			if i.AssignedTo != nil {
				return false
			}
		case specification.AssignedToUser:
			if i.AssignedTo == nil || *i.AssignedTo != s.UserID {
				return false
			}
		case specification.FilterBy:
			switch s.Field {
			case "tracking_token":
				if i.TrackingToken != s.Value.(string) {
					return false
				}
			case "animal_id":
				if i.AnimalId != s.Value.(uuid.UUID) {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeInquiryRepo) Create(ctx context.Context, i *entity.Inquiry) error {
	c := *i
	r.store.inquiries = append(r.store.inquiries, &c)
	return nil
}

func (r *fakeInquiryRepo) Update(ctx context.Context, i *entity.Inquiry) error {
	for idx, existing := range r.store.inquiries {
		if existing.Id == i.Id {
			c := *i
			r.store.inquiries[idx] = &c
		}
	}
	return nil
}

func (r *fakeInquiryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Inquiry, error) {
	for _, i := range r.store.inquiries {
		if inquiryMatches(i, specs) {
			c := *i
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeInquiryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Inquiry, error) {
	var out []*entity.Inquiry
	for _, i := range r.store.inquiries {
		if inquiryMatches(i, specs) {
			c := *i
			out = append(out, &c)
		}
	}
	start, end := paginationWindow(len(out), specs)
	return out[start:end], nil
}

func (r *fakeInquiryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, i := range r.store.inquiries {
		if inquiryMatches(i, specs) {
			n++
		}
	}
	return n, nil
}

// --- inquiry events / notes ---

type fakeInquiryEventRepo struct{ store *fakeStore }

func (r *fakeInquiryEventRepo) Create(ctx context.Context, e *entity.InquiryEvent) error {
	c := *e
	r.store.inquiryEvents = append(r.store.inquiryEvents, &c)
	return nil
}

func (r *fakeInquiryEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryEvent, error) {
	var out []*entity.InquiryEvent
	for _, e := range r.store.inquiryEvents {
		match := true
		for _, sp := range specs {
			if s, ok := sp.(specification.FilterBy); ok && s.Field == "inquiry_id" && e.InquiryId != s.Value.(uuid.UUID) {
				match = false
			}
		}
		if match {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeInquiryNoteRepo struct{ store *fakeStore }

func (r *fakeInquiryNoteRepo) Create(ctx context.Context, n *entity.InquiryNote) error {
	c := *n
	r.store.inquiryNotes = append(r.store.inquiryNotes, &c)
	return nil
}

func (r *fakeInquiryNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InquiryNote, error) {
	var out []*entity.InquiryNote
	for _, n := range r.store.inquiryNotes {
		c := *n
		out = append(out, &c)
	}
	return out, nil
}

// --- email logs / templates ---

type fakeEmailLogRepo struct{ store *fakeStore }

func (r *fakeEmailLogRepo) Create(ctx context.Context, l *entity.EmailLog) error {
	c := *l
	r.store.emailLogs = append(r.store.emailLogs, &c)
	return nil
}

func (r *fakeEmailLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailLog, error) {
	var out []*entity.EmailLog
	for _, l := range r.store.emailLogs {
		match := true
		for _, sp := range specs {
			if s, ok := sp.(specification.ByRescueID); ok {
				if l.RescueId == nil || *l.RescueId != s.RescueID {
					match = false
				}
			}
		}
		if match {
			c := *l
			out = append(out, &c)
		}
	}
	start, end := paginationWindow(len(out), specs)
	return out[start:end], nil
}

func (r *fakeEmailLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, _ := r.FindAll(ctx, specs...)
	return int64(len(rows)), nil
}

type fakeTemplateRepo struct{ store *fakeStore }

func templateMatches(t *entity.SavedReplyTemplate, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.ByRescueID:
			if t.RescueId != s.RescueID {
				return false
			}
		}
	}
	return true
}

func (r *fakeTemplateRepo) Create(ctx context.Context, t *entity.SavedReplyTemplate) error {
	c := *t
	r.store.templates = append(r.store.templates, &c)
	return nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, t *entity.SavedReplyTemplate) error {
	for i, existing := range r.store.templates {
		if existing.Id == t.Id {
			c := *t
			r.store.templates[i] = &c
		}
	}
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.templates[:0]
	for _, t := range r.store.templates {
		if t.Id != id {
			kept = append(kept, t)
		}
	}
	r.store.templates = kept
	return nil
}

func (r *fakeTemplateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedReplyTemplate, error) {
	for _, t := range r.store.templates {
		if templateMatches(t, specs) {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTemplateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedReplyTemplate, error) {
	var out []*entity.SavedReplyTemplate
	for _, t := range r.store.templates {
		if templateMatches(t, specs) {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

// --- moderation ---

type fakeReportRepo struct{ store *fakeStore }

func reportMatches(rep *entity.AbuseReport, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if rep.Id != s.ID {
				return false
			}
		case specification.StatusIs:
			if string(rep.Status) != s.Status {
				return false
			}
		case specification.FilterBy:
			if s.Field == "status" && string(rep.Status) != s.Value.(string) {
				return false
			}
		}
	}
	return true
}

func (r *fakeReportRepo) Create(ctx context.Context, rep *entity.AbuseReport) error {
	c := *rep
	r.store.reports = append(r.store.reports, &c)
	return nil
}

func (r *fakeReportRepo) Update(ctx context.Context, rep *entity.AbuseReport) error {
	for i, existing := range r.store.reports {
		if existing.Id == rep.Id {
			c := *rep
			r.store.reports[i] = &c
		}
	}
	return nil
}

func (r *fakeReportRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AbuseReport, error) {
	for _, rep := range r.store.reports {
		if reportMatches(rep, specs) {
			c := *rep
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AbuseReport, error) {
	var out []*entity.AbuseReport
	for _, rep := range r.store.reports {
		if reportMatches(rep, specs) {
			c := *rep
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeActionRepo struct{ store *fakeStore }

func (r *fakeActionRepo) Create(ctx context.Context, a *entity.ModerationAction) error {
	c := *a
	r.store.actions = append(r.store.actions, &c)
	return nil
}

func (r *fakeActionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ModerationAction, error) {
	var out []*entity.ModerationAction
	for _, a := range r.store.actions {
		match := true
		for _, sp := range specs {
			if s, ok := sp.(specification.ByRescueID); ok && a.RescueId != s.RescueID {
				match = false
			}
		}
		if match {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeVerificationRepo struct{ store *fakeStore }

func verificationMatches(v *entity.VerificationRequest, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if v.Id != s.ID {
				return false
			}
		case specification.ByRescueID:
			if v.RescueId != s.RescueID {
				return false
			}
		case specification.StatusIs:
			if string(v.Status) != s.Status {
				return false
			}
		case specification.FilterBy:
			if s.Field == "status" && string(v.Status) != s.Value.(string) {
				return false
			}
		}
	}
	return true
}

func (r *fakeVerificationRepo) Create(ctx context.Context, v *entity.VerificationRequest) error {
	c := *v
	r.store.verifications = append(r.store.verifications, &c)
	return nil
}

func (r *fakeVerificationRepo) Update(ctx context.Context, v *entity.VerificationRequest) error {
	for i, existing := range r.store.verifications {
		if existing.Id == v.Id {
			c := *v
			r.store.verifications[i] = &c
		}
	}
	return nil
}

func (r *fakeVerificationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VerificationRequest, error) {
	for _, v := range r.store.verifications {
		if verificationMatches(v, specs) {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeVerificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRequest, error) {
	var out []*entity.VerificationRequest
	for _, v := range r.store.verifications {
		if verificationMatches(v, specs) {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

// --- collaborators ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.Event) {
	p.published = append(p.published, event)
}
