package dto

import "time"

type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=supporter pro"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
	Token       string `json:"token"`
}

// PaymentNotificationRequest mirrors the midtrans webhook payload fields the
// sync needs. SignatureKey is verified before anything else is read.
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
}

type SubscriptionResponse struct {
	PlanTier           string     `json:"plan_tier"`
	SubscriptionStatus *string    `json:"subscription_status,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
}
