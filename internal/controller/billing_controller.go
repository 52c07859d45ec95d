package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Subscription(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type billingController struct {
	billingService service.IBillingService
	authContext    service.IAuthContextService
}

func NewBillingController(billingService service.IBillingService, authContext service.IAuthContextService) IBillingController {
	return &billingController{
		billingService: billingService,
		authContext:    authContext,
	}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing/v1")

	// The webhook authenticates by signature, not by JWT.
	h.Post("/webhook", c.Webhook)

	// Billing stays reachable while the rescue is disabled.
	scoped := h.Group("", serverutils.JwtMiddleware, RescueContextMiddleware(c.authContext))
	scoped.Post("/checkout", c.Checkout)
	scoped.Get("/subscription", c.Subscription)
}

func (c *billingController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.billingService.Checkout(ctx.Context(), authContextFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *billingController) Subscription(ctx *fiber.Ctx) error {
	res, err := c.billingService.Subscription(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription loaded", res))
}

func (c *billingController) Webhook(ctx *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.billingService.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}
