package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// moderationController is the operator console. Every route sits behind the
// allowlist check, no rescue context is involved.
type IModerationController interface {
	RegisterRoutes(r fiber.Router)
	ListReports(ctx *fiber.Ctx) error
	UpdateReport(ctx *fiber.Ctx) error
	ListActions(ctx *fiber.Ctx) error
	ListVerifications(ctx *fiber.Ctx) error
	ApproveVerification(ctx *fiber.Ctx) error
	RejectVerification(ctx *fiber.Ctx) error
	SetRescueDisabled(ctx *fiber.Ctx) error
}

type moderationController struct {
	moderationService service.IModerationService
}

func NewModerationController(moderationService service.IModerationService) IModerationController {
	return &moderationController{moderationService: moderationService}
}

func (c *moderationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/moderation/v1")
	h.Use(serverutils.JwtMiddleware, OperatorMiddleware(c.moderationService))
	h.Get("/reports", c.ListReports)
	h.Put("/reports/:id", c.UpdateReport)
	h.Get("/rescues/:rescueId/actions", c.ListActions)
	h.Get("/verifications", c.ListVerifications)
	h.Post("/verifications/:id/approve", c.ApproveVerification)
	h.Post("/verifications/:id/reject", c.RejectVerification)
	h.Put("/rescues/:rescueId/disabled", c.SetRescueDisabled)
}

func (c *moderationController) ListReports(ctx *fiber.Ctx) error {
	res, err := c.moderationService.ListReports(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Reports loaded", res))
}

func (c *moderationController) UpdateReport(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moderationService.UpdateReport(ctx.Context(), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Report updated", res))
}

func (c *moderationController) ListActions(ctx *fiber.Ctx) error {
	rescueId, err := parseIdParam(ctx, "rescueId")
	if err != nil {
		return err
	}

	res, err := c.moderationService.ListActions(ctx.Context(), rescueId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Actions loaded", res))
}

func (c *moderationController) ListVerifications(ctx *fiber.Ctx) error {
	res, err := c.moderationService.ListVerifications(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Verification requests loaded", res))
}

func (c *moderationController) ApproveVerification(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.moderationService.ApproveVerification(ctx.Context(), userIdFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Verification approved", nil))
}

func (c *moderationController) RejectVerification(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.moderationService.RejectVerification(ctx.Context(), userIdFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Verification rejected", nil))
}

func (c *moderationController) SetRescueDisabled(ctx *fiber.Ctx) error {
	rescueId, err := parseIdParam(ctx, "rescueId")
	if err != nil {
		return err
	}

	var req dto.DisableRescueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.RescueId = rescueId

	if err := c.moderationService.SetRescueDisabled(ctx.Context(), userIdFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Rescue updated", nil))
}
