package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInquiryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Counts(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	UpdateAssignment(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	AddNote(ctx *fiber.Ctx) error
	BulkArchive(ctx *fiber.Ctx) error
	BulkStatus(ctx *fiber.Ctx) error
	BulkAssign(ctx *fiber.Ctx) error
}

type inquiryController struct {
	inquiryService service.IInquiryService
	authContext    service.IAuthContextService
}

func NewInquiryController(inquiryService service.IInquiryService, authContext service.IAuthContextService) IInquiryController {
	return &inquiryController{
		inquiryService: inquiryService,
		authContext:    authContext,
	}
}

func (c *inquiryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/inquiry/v1")
	h.Use(serverutils.JwtMiddleware, RescueContextMiddleware(c.authContext), BlockDisabledRescue())
	h.Get("", c.List)
	h.Get("/counts", c.Counts)
	h.Post("/bulk/archive", c.BulkArchive)
	h.Post("/bulk/status", c.BulkStatus)
	h.Post("/bulk/assign", c.BulkAssign)
	h.Get("/:id", c.Show)
	h.Put("/:id/status", c.UpdateStatus)
	h.Put("/:id/assignment", c.UpdateAssignment)
	h.Post("/:id/archive", c.Archive)
	h.Post("/:id/restore", c.Restore)
	h.Post("/:id/notes", c.AddNote)
}

func (c *inquiryController) List(ctx *fiber.Ctx) error {
	var query dto.ListInquiriesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("invalid query parameters")
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.inquiryService.List(ctx.Context(), authContextFrom(ctx), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiries loaded", res))
}

func (c *inquiryController) Counts(ctx *fiber.Ctx) error {
	res, err := c.inquiryService.Counts(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiry counts", res))
}

func (c *inquiryController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.inquiryService.Show(ctx.Context(), authContextFrom(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiry loaded", res))
}

func (c *inquiryController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateInquiryStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.inquiryService.UpdateStatus(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Status updated", res))
}

func (c *inquiryController) UpdateAssignment(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateInquiryAssignmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.inquiryService.UpdateAssignment(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assignment updated", res))
}

func (c *inquiryController) Archive(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.inquiryService.Archive(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Inquiry archived", nil))
}

func (c *inquiryController) Restore(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.inquiryService.Restore(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Inquiry restored", nil))
}

func (c *inquiryController) AddNote(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AddInquiryNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.inquiryService.AddNote(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Note added", nil))
}

func (c *inquiryController) BulkArchive(ctx *fiber.Ctx) error {
	req, err := c.parseBulk(ctx)
	if err != nil {
		return err
	}

	res, err := c.inquiryService.BulkArchive(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiries archived", res))
}

func (c *inquiryController) BulkStatus(ctx *fiber.Ctx) error {
	req, err := c.parseBulk(ctx)
	if err != nil {
		return err
	}
	if req.Status == "" {
		return apperr.Validation("status is required")
	}

	res, err := c.inquiryService.BulkStatus(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Statuses updated", res))
}

func (c *inquiryController) BulkAssign(ctx *fiber.Ctx) error {
	req, err := c.parseBulk(ctx)
	if err != nil {
		return err
	}

	res, err := c.inquiryService.BulkAssign(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assignments updated", res))
}

func (c *inquiryController) parseBulk(ctx *fiber.Ctx) (*dto.BulkInquiryRequest, error) {
	var req dto.BulkInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}
