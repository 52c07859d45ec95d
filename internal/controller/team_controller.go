package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	ListMembers(ctx *fiber.Ctx) error
	UpdateMemberRole(ctx *fiber.Ctx) error
	RemoveMember(ctx *fiber.Ctx) error
	CreateInvitation(ctx *fiber.Ctx) error
	ListInvitations(ctx *fiber.Ctx) error
	ResendInvitation(ctx *fiber.Ctx) error
	CancelInvitation(ctx *fiber.Ctx) error
	AcceptInvitation(ctx *fiber.Ctx) error
}

type teamController struct {
	teamService service.ITeamService
	authContext service.IAuthContextService
}

func NewTeamController(teamService service.ITeamService, authContext service.IAuthContextService) ITeamController {
	return &teamController{
		teamService: teamService,
		authContext: authContext,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/team/v1")
	h.Use(serverutils.JwtMiddleware)

	// Accepting an invitation needs no existing membership.
	h.Post("/invitations/accept", c.AcceptInvitation)

	scoped := h.Group("", RescueContextMiddleware(c.authContext), BlockDisabledRescue())
	scoped.Get("/members", c.ListMembers)
	scoped.Put("/members/:userId/role", c.UpdateMemberRole)
	scoped.Delete("/members/:userId", c.RemoveMember)
	scoped.Post("/invitations", c.CreateInvitation)
	scoped.Get("/invitations", c.ListInvitations)
	scoped.Post("/invitations/:id/resend", c.ResendInvitation)
	scoped.Post("/invitations/:id/cancel", c.CancelInvitation)
}

func (c *teamController) ListMembers(ctx *fiber.Ctx) error {
	res, err := c.teamService.ListMembers(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Members loaded", res))
}

func (c *teamController) UpdateMemberRole(ctx *fiber.Ctx) error {
	targetId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateMemberRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UserId = targetId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.teamService.UpdateMemberRole(ctx.Context(), authContextFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Role updated", nil))
}

func (c *teamController) RemoveMember(ctx *fiber.Ctx) error {
	targetId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	if err := c.teamService.RemoveMember(ctx.Context(), authContextFrom(ctx), targetId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Member removed", nil))
}

func (c *teamController) CreateInvitation(ctx *fiber.Ctx) error {
	var req dto.CreateInvitationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.teamService.CreateInvitation(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Invitation sent", res))
}

func (c *teamController) ListInvitations(ctx *fiber.Ctx) error {
	res, err := c.teamService.ListInvitations(ctx.Context(), authContextFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Invitations loaded", res))
}

func (c *teamController) ResendInvitation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.teamService.ResendInvitation(ctx.Context(), authContextFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Invitation resent", nil))
}

func (c *teamController) CancelInvitation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.teamService.CancelInvitation(ctx.Context(), authContextFrom(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Invitation canceled", nil))
}

func (c *teamController) AcceptInvitation(ctx *fiber.Ctx) error {
	var req dto.AcceptInvitationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.teamService.AcceptInvitation(ctx.Context(), userIdFrom(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Invitation accepted", nil))
}
