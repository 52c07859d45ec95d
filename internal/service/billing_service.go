package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"strings"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Plan prices in IDR, midtrans's native currency.
const (
	supporterPrice int64 = 150000
	proPrice       int64 = 450000

	subscriptionPeriodDays = 30
)

type IBillingService interface {
	Checkout(ctx context.Context, authCtx *entity.AuthContext, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
	Subscription(ctx context.Context, authCtx *entity.AuthContext) (*dto.SubscriptionResponse, error)
}

type billingService struct {
	uowFactory      unitofwork.RepositoryFactory
	elevatedFactory unitofwork.RepositoryFactory
	serverKey       string
	production      bool
	clientURL       string
	logger          logger.ILogger
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	elevatedFactory unitofwork.RepositoryFactory,
	serverKey string,
	production bool,
	clientURL string,
	log logger.ILogger,
) IBillingService {
	return &billingService{
		uowFactory:      uowFactory,
		elevatedFactory: elevatedFactory,
		serverKey:       serverKey,
		production:      production,
		clientURL:       clientURL,
		logger:          log,
	}
}

func (s *billingService) Checkout(ctx context.Context, authCtx *entity.AuthContext, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}
	if authCtx.Role != entity.RoleOwner {
		return nil, apperr.Forbidden("only the owner can manage billing")
	}
	if s.serverKey == "" {
		return nil, apperr.Upstream("payment gateway is not configured", nil)
	}

	price := supporterPrice
	if req.Plan == string(entity.PlanTierPro) {
		price = proPrice
	}

	// The plan and rescue ride inside the order id so the webhook can recover
	// both without extra state.
	orderId := fmt.Sprintf("rescueos-%s-%s-%d", req.Plan, authCtx.Rescue.Id, time.Now().Unix())

	var client snap.Client
	env := midtrans.Sandbox
	if s.production {
		env = midtrans.Production
	}
	client.New(s.serverKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: price,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/settings/billing?payment=finished", s.clientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: authCtx.Rescue.Name,
			Email: authCtx.Rescue.ContactEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Price: price,
				Qty:   1,
				Name:  fmt.Sprintf("RescueOS %s plan, %d days", req.Plan, subscriptionPeriodDays),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	resp, midErr := client.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, apperr.Upstream("payment gateway rejected the checkout", fmt.Errorf("midtrans: %s", midErr.GetMessage()))
	}

	s.logger.Info("billing", "checkout created", map[string]interface{}{
		"rescue_id": authCtx.Rescue.Id.String(),
		"order_id":  orderId,
		"plan":      req.Plan,
	})

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		RedirectURL: resp.RedirectURL,
		Token:       resp.Token,
	}, nil
}

// HandleNotification syncs the rescue's plan from a midtrans webhook. The
// handler is idempotent, replayed notifications converge on the same row
// state.
func (s *billingService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	if s.serverKey == "" {
		return apperr.Upstream("payment gateway is not configured", nil)
	}

	// signature = SHA512(order_id + status_code + gross_amount + server_key)
	input := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	if req.SignatureKey != expected {
		s.logger.Warn("billing", "webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return apperr.Forbidden("invalid signature")
	}

	plan, rescueId, err := parseOrderId(req.OrderId)
	if err != nil {
		return apperr.Validation("unrecognized order id")
	}

	status := req.TransactionStatus
	if status == "capture" && req.FraudStatus == "challenge" {
		s.logger.Warn("billing", "capture held for fraud review", map[string]interface{}{"order_id": req.OrderId})
		return nil
	}

	fields := map[string]interface{}{}
	switch status {
	case "capture", "settlement":
		fields["plan_tier"] = string(plan)
		fields["subscription_status"] = "active"
		fields["current_period_end"] = time.Now().AddDate(0, 0, subscriptionPeriodDays)
	case "pending":
		fields["subscription_status"] = "pending"
	case "expire", "cancel", "deny":
		fields["plan_tier"] = string(entity.PlanTierFree)
		fields["subscription_status"] = "canceled"
		fields["current_period_end"] = nil
	default:
		s.logger.Info("billing", "ignoring webhook status", map[string]interface{}{
			"order_id": req.OrderId,
			"status":   status,
		})
		return nil
	}

	uow := s.elevatedFactory.NewUnitOfWork(ctx)
	affected, err := uow.RescueRepository().UpdateFields(ctx, fields, specification.ByID{ID: rescueId})
	if err != nil {
		return fmt.Errorf("failed to sync subscription: %w", err)
	}
	if affected == 0 {
		return apperr.NotFound("rescue not found")
	}

	s.logger.Info("billing", "subscription synced", map[string]interface{}{
		"rescue_id": rescueId.String(),
		"order_id":  req.OrderId,
		"status":    status,
		"plan":      string(plan),
	})
	return nil
}

func (s *billingService) Subscription(ctx context.Context, authCtx *entity.AuthContext) (*dto.SubscriptionResponse, error) {
	if !authCtx.HasRescue() {
		return nil, apperr.NotFound("no rescue for this user")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rescue, err := uow.RescueRepository().FindOne(ctx, specification.ByID{ID: authCtx.Rescue.Id})
	if err != nil {
		return nil, fmt.Errorf("failed to load rescue: %w", err)
	}
	if rescue == nil {
		return nil, apperr.NotFound("rescue not found")
	}

	return &dto.SubscriptionResponse{
		PlanTier:           string(rescue.PlanTier),
		SubscriptionStatus: rescue.SubscriptionStatus,
		CurrentPeriodEnd:   rescue.CurrentPeriodEnd,
	}, nil
}

// parseOrderId undoes the "rescueos-{plan}-{uuid}-{unix}" layout used by
// Checkout.
func parseOrderId(orderId string) (entity.PlanTier, uuid.UUID, error) {
	parts := strings.Split(orderId, "-")
	// "rescueos" + plan + 5 uuid groups + timestamp
	if len(parts) != 8 || parts[0] != "rescueos" {
		return "", uuid.Nil, fmt.Errorf("malformed order id %q", orderId)
	}
	plan := entity.PlanTier(parts[1])
	if plan != entity.PlanTierSupporter && plan != entity.PlanTierPro {
		return "", uuid.Nil, fmt.Errorf("unknown plan %q", parts[1])
	}
	rescueId, err := uuid.Parse(strings.Join(parts[2:7], "-"))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("bad rescue id in order %q: %w", orderId, err)
	}
	return plan, rescueId, nil
}
