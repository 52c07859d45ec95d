package service

import (
	"context"
	"fmt"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/pkg/mailer"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"
	"rescueos-be/pkg/events"
	natsbus "rescueos-be/pkg/nats"

	"github.com/google/uuid"
)

type INotificationService interface {
	// Start wires the durable event consumers. Call once from main.
	Start() error

	CreateTemplate(ctx context.Context, authCtx *entity.AuthContext, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) error
	ListTemplates(ctx context.Context, authCtx *entity.AuthContext) ([]dto.TemplateResponse, error)
	SendTemplate(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.SendTemplateRequest) error

	ListEmailLogs(ctx context.Context, authCtx *entity.AuthContext) ([]dto.EmailLogResponse, error)
}

type notificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *natsbus.Subscriber
	publisher    IPublisherService
	email        mailer.IEmailService
	supportEmail string
	clientURL    string
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *natsbus.Subscriber,
	publisher IPublisherService,
	email mailer.IEmailService,
	supportEmail string,
	clientURL string,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory:   uowFactory,
		subscriber:   subscriber,
		publisher:    publisher,
		email:        email,
		supportEmail: supportEmail,
		clientURL:    clientURL,
		logger:       log,
	}
}

func (s *notificationService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("notification", "event bus not configured, dispatcher idle", nil)
		return nil
	}
	subs := []struct {
		subject string
		durable string
		handler natsbus.EventHandler
	}{
		{natsbus.Subject(events.TypeInquiryCreated), "dispatch-inquiry-created", s.handleInquiryCreated},
		{natsbus.Subject(events.TypeInquiryStatusChanged), "dispatch-status-changed", s.handleStatusChanged},
		{natsbus.Subject(events.TypeInvitationIssued), "dispatch-invitation", s.handleInvitation},
		{natsbus.Subject(events.TypeReplyRequested), "dispatch-reply", s.handleReply},
	}
	for _, sub := range subs {
		if err := s.subscriber.Subscribe(sub.subject, sub.durable, sub.handler); err != nil {
			return fmt.Errorf("failed to subscribe %s: %w", sub.subject, err)
		}
	}
	return nil
}

func (s *notificationService) handleInquiryCreated(ctx context.Context, event events.Event) error {
	p := event.Payload()
	inquiryId := parseId(p, "inquiry_id")
	rescueId := parseId(p, "rescue_id")
	adopterEmail := str(p, "adopter_email")
	adopterName := str(p, "adopter_name")
	animalName := str(p, "animal_name")

	// Adopter confirmation.
	s.dispatch(ctx, rescueId, inquiryId, entity.SendTypeAdopterConfirmation, mailer.Message{
		To:      adopterEmail,
		Subject: fmt.Sprintf("We received your inquiry about %s", animalName),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for your interest in <strong>%s</strong>. The rescue team will get back to you soon.</p>",
			adopterName, animalName),
	})

	// Rescue alert goes to the tenant contact address.
	if contact := s.rescueContact(ctx, rescueId); contact != "" {
		s.dispatch(ctx, rescueId, inquiryId, entity.SendTypeRescueAlert, mailer.Message{
			To:      contact,
			Subject: fmt.Sprintf("New inquiry for %s", animalName),
			HTMLBody: fmt.Sprintf(
				"<p>%s (%s) asked about <strong>%s</strong>.</p><p>Reply from your dashboard.</p>",
				adopterName, adopterEmail, animalName),
			ReplyTo: adopterEmail,
		})
	}
	return nil
}

func (s *notificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	p := event.Payload()
	s.dispatch(ctx, parseId(p, "rescue_id"), parseId(p, "inquiry_id"), entity.SendTypeAdopterConfirmation, mailer.Message{
		To:      str(p, "adopter_email"),
		Subject: fmt.Sprintf("Update on your inquiry about %s", str(p, "animal_name")),
		HTMLBody: fmt.Sprintf(
			"<p>Your inquiry moved to <strong>%s</strong>.</p>",
			str(p, "to_status")),
	})
	return nil
}

func (s *notificationService) handleInvitation(ctx context.Context, event events.Event) error {
	p := event.Payload()
	link := fmt.Sprintf("%s/invite/%s", s.clientURL, str(p, "token"))
	s.dispatch(ctx, parseId(p, "rescue_id"), nil, entity.SendTypeInvite, mailer.Message{
		To:      str(p, "email"),
		Subject: fmt.Sprintf("You are invited to join %s", str(p, "rescue_name")),
		HTMLBody: fmt.Sprintf(
			"<p>You have been invited as <strong>%s</strong>.</p><p><a href=\"%s\">Accept the invitation</a> within 7 days.</p>",
			str(p, "role"), link),
	})
	return nil
}

func (s *notificationService) handleReply(ctx context.Context, event events.Event) error {
	p := event.Payload()
	inquiryId := parseId(p, "inquiry_id")
	templateId := parseId(p, "template_id")
	rescueId := parseId(p, "rescue_id")
	if inquiryId == nil || templateId == nil || rescueId == nil {
		s.logger.Error("notification", "reply event missing ids", map[string]interface{}{"payload": p})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := uow.InquiryRepository().FindOne(ctx, specification.ByID{ID: *inquiryId})
	if err != nil {
		return fmt.Errorf("failed to load inquiry: %w", err)
	}
	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: *templateId},
		specification.ByRescueID{RescueID: *rescueId},
	)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	if inquiry == nil || template == nil {
		s.logger.Warn("notification", "reply target vanished", map[string]interface{}{"inquiry_id": inquiryId.String()})
		return nil
	}

	s.dispatch(ctx, rescueId, inquiryId, entity.SendTypeTemplateReply, mailer.Message{
		To:       inquiry.AdopterEmail,
		Subject:  template.Subject,
		HTMLBody: template.Body,
		ReplyTo:  s.rescueContact(ctx, rescueId),
	})
	return nil
}

// dispatch sends one email and records the attempt. Missing SMTP credentials
// degrade to a skipped log row, never an error.
func (s *notificationService) dispatch(ctx context.Context, rescueId, inquiryId *uuid.UUID, sendType entity.EmailSendType, msg mailer.Message) {
	log := entity.EmailLog{
		Id:        uuid.New(),
		RescueId:  rescueId,
		InquiryId: inquiryId,
		Recipient: msg.To,
		Subject:   msg.Subject,
		SendType:  sendType,
		CreatedAt: time.Now(),
	}

	switch {
	case msg.To == "":
		log.Status = entity.EmailSkipped
		reason := "no recipient"
		log.ErrorText = &reason
	case !s.email.Configured():
		log.Status = entity.EmailSkipped
		reason := "smtp not configured"
		log.ErrorText = &reason
	default:
		if err := s.email.Send(msg); err != nil {
			log.Status = entity.EmailFailed
			errText := err.Error()
			log.ErrorText = &errText
			s.logger.Error("notification", "send failed", map[string]interface{}{
				"recipient": msg.To,
				"type":      string(sendType),
				"error":     errText,
			})
		} else {
			log.Status = entity.EmailSent
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EmailLogRepository().Create(ctx, &log); err != nil {
		s.logger.Error("notification", "failed to write email log", map[string]interface{}{"error": err.Error()})
	}
}

func (s *notificationService) rescueContact(ctx context.Context, rescueId *uuid.UUID) string {
	if rescueId == nil {
		return ""
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rescue, err := uow.RescueRepository().FindOne(ctx, specification.ByID{ID: *rescueId})
	if err != nil || rescue == nil {
		return ""
	}
	return rescue.ContactEmail
}

func (s *notificationService) CreateTemplate(ctx context.Context, authCtx *entity.AuthContext, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	template := entity.SavedReplyTemplate{
		Id:        uuid.New(),
		RescueId:  authCtx.Rescue.Id,
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := uow.TemplateRepository().Create(ctx, &template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return templateToResponse(&template), nil
}

func (s *notificationService) UpdateTemplate(ctx context.Context, authCtx *entity.AuthContext, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if template == nil {
		return nil, apperr.NotFound("template not found")
	}

	template.Name = req.Name
	template.Subject = req.Subject
	template.Body = req.Body
	if err := uow.TemplateRepository().Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return templateToResponse(template), nil
}

func (s *notificationService) DeleteTemplate(ctx context.Context, authCtx *entity.AuthContext, id uuid.UUID) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	if template == nil {
		return apperr.NotFound("template not found")
	}

	if err := uow.TemplateRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func (s *notificationService) ListTemplates(ctx context.Context, authCtx *entity.AuthContext) ([]dto.TemplateResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	res := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		res = append(res, *templateToResponse(t))
	}
	return res, nil
}

// SendTemplate queues the reply on the bus; delivery happens off the request
// path.
func (s *notificationService) SendTemplate(ctx context.Context, authCtx *entity.AuthContext, actorId uuid.UUID, req *dto.SendTemplateRequest) error {
	if !authCtx.HasRescue() {
		return apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	inquiry, err := uow.InquiryRepository().FindOne(ctx,
		specification.ByID{ID: req.InquiryId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load inquiry: %w", err)
	}
	if inquiry == nil {
		return apperr.NotFound("inquiry not found")
	}

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: req.TemplateId},
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
	)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	if template == nil {
		return apperr.NotFound("template not found")
	}

	s.publisher.Publish(ctx, events.NewReplyRequested(inquiry.Id, template.Id, authCtx.Rescue.Id, actorId))
	return nil
}

func (s *notificationService) ListEmailLogs(ctx context.Context, authCtx *entity.AuthContext) ([]dto.EmailLogResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.EmailLogRepository().FindAll(ctx,
		specification.ByRescueID{RescueID: authCtx.Rescue.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100, Offset: 0},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}

	res := make([]dto.EmailLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, dto.EmailLogResponse{
			Id:        l.Id,
			Recipient: l.Recipient,
			Subject:   l.Subject,
			SendType:  string(l.SendType),
			Status:    string(l.Status),
			ErrorText: l.ErrorText,
			InquiryId: l.InquiryId,
			CreatedAt: l.CreatedAt,
		})
	}
	return res, nil
}

func templateToResponse(t *entity.SavedReplyTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		Id:        t.Id,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func parseId(p map[string]interface{}, key string) *uuid.UUID {
	raw, ok := p[key].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func str(p map[string]interface{}, key string) string {
	v, _ := p[key].(string)
	return v
}
