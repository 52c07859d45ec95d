package controller

import (
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RescueContextMiddleware resolves the caller's rescue and role once per
// request and parks them in Locals. Runs after the JWT middleware.
func RescueContextMiddleware(authContext service.IAuthContextService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := userIdFrom(ctx)
		if userId == uuid.Nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
		}

		authCtx, err := authContext.Resolve(ctx.Context(), userId)
		if err != nil {
			return err
		}
		ctx.Locals("auth_context", authCtx)
		return ctx.Next()
	}
}

// BlockDisabledRescue rejects dashboard work for suspended tenants. Settings
// and billing routes skip this so the owner can still see why and resolve it.
func BlockDisabledRescue() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if authContextFrom(ctx).RescueDisabled() {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "This rescue has been disabled"))
		}
		return ctx.Next()
	}
}

// OperatorMiddleware gates the moderation console behind the platform
// operator allowlist.
func OperatorMiddleware(moderation service.IModerationService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		email, _ := ctx.Locals("user_email").(string)
		if email == "" || !moderation.IsOperator(email) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Operator access required"))
		}
		return ctx.Next()
	}
}

func userIdFrom(ctx *fiber.Ctx) uuid.UUID {
	raw, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func authContextFrom(ctx *fiber.Ctx) *entity.AuthContext {
	authCtx, _ := ctx.Locals("auth_context").(*entity.AuthContext)
	return authCtx
}
