package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	CreateTemplate(ctx *fiber.Ctx) error
	ListTemplates(ctx *fiber.Ctx) error
	UpdateTemplate(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	SendTemplate(ctx *fiber.Ctx) error
	ListEmailLogs(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	authContext         service.IAuthContextService
}

func NewNotificationController(notificationService service.INotificationService, authContext service.IAuthContextService) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		authContext:         authContext,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notification/v1")
	h.Use(serverutils.JwtMiddleware, RescueContextMiddleware(c.authContext), BlockDisabledRescue())
	h.Post("/templates", c.CreateTemplate)
	h.Get("/templates", c.ListTemplates)
	h.Put("/templates/:id", c.UpdateTemplate)
	h.Delete("/templates/:id", c.DeleteTemplate)
	h.Post("/templates/send", c.SendTemplate)
	h.Get("/email-logs", c.ListEmailLogs)
}

func (c *notificationController) CreateTemplate(ctx *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.notificationService.CreateTemplate(ctx.Context(), authContextFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Template created", res))
}

func (c *notificationController) ListTemplates(ctx *fiber.Ctx) error {
	res, err := c.notificationService.ListTemplates(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Templates loaded", res))
}

func (c *notificationController) UpdateTemplate(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.notificationService.UpdateTemplate(ctx.Context(), authContextFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Template updated", res))
}

func (c *notificationController) DeleteTemplate(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.notificationService.DeleteTemplate(ctx.Context(), authContextFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Template deleted", nil))
}

func (c *notificationController) SendTemplate(ctx *fiber.Ctx) error {
	var req dto.SendTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.notificationService.SendTemplate(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Reply queued", nil))
}

func (c *notificationController) ListEmailLogs(ctx *fiber.Ctx) error {
	res, err := c.notificationService.ListEmailLogs(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Email logs loaded", res))
}
