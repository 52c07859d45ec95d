package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRescueController interface {
	RegisterRoutes(r fiber.Router)
	Onboard(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
	RequestVerification(ctx *fiber.Ctx) error
}

type rescueController struct {
	rescueService service.IRescueService
	authContext   service.IAuthContextService
}

func NewRescueController(rescueService service.IRescueService, authContext service.IAuthContextService) IRescueController {
	return &rescueController{
		rescueService: rescueService,
		authContext:   authContext,
	}
}

func (c *rescueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rescue/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/onboard", c.Onboard)

	// Settings stay reachable while the rescue is disabled.
	scoped := h.Group("", RescueContextMiddleware(c.authContext))
	scoped.Put("/settings", c.UpdateSettings)
	scoped.Post("/verification", c.RequestVerification)
}

func (c *rescueController) Onboard(ctx *fiber.Ctx) error {
	var req dto.OnboardRescueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.rescueService.Onboard(ctx.Context(), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Rescue created", res))
}

func (c *rescueController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateRescueSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.rescueService.UpdateSettings(ctx.Context(), authContextFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Settings updated", res))
}

func (c *rescueController) RequestVerification(ctx *fiber.Ctx) error {
	var req dto.RequestVerificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.rescueService.RequestVerification(ctx.Context(), authContextFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Verification requested", nil))
}
