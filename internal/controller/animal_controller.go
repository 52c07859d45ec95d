package controller

import (
	"context"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnimalController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	MoveStage(ctx *fiber.Ctx) error
	StageHistory(ctx *fiber.Ctx) error
	BulkArchive(ctx *fiber.Ctx) error
	BulkActivate(ctx *fiber.Ctx) error
	BulkStatus(ctx *fiber.Ctx) error
	AddPhoto(ctx *fiber.Ctx) error
	ReorderPhoto(ctx *fiber.Ctx) error
	DeletePhoto(ctx *fiber.Ctx) error
}

type animalController struct {
	animalService service.IAnimalService
	authContext   service.IAuthContextService
}

func NewAnimalController(animalService service.IAnimalService, authContext service.IAuthContextService) IAnimalController {
	return &animalController{
		animalService: animalService,
		authContext:   authContext,
	}
}

func (c *animalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/animal/v1")
	h.Use(serverutils.JwtMiddleware, RescueContextMiddleware(c.authContext), BlockDisabledRescue())
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Post("/bulk/archive", c.BulkArchive)
	h.Post("/bulk/activate", c.BulkActivate)
	h.Post("/bulk/status", c.BulkStatus)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Put("/:id/stage", c.MoveStage)
	h.Get("/:id/stage-history", c.StageHistory)
	h.Post("/:id/photos", c.AddPhoto)
	h.Put("/:id/photos/reorder", c.ReorderPhoto)
	h.Delete("/:id/photos/:photoId", c.DeletePhoto)
}

func (c *animalController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.Create(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animal created", res))
}

func (c *animalController) List(ctx *fiber.Ctx) error {
	var query dto.ListAnimalsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("invalid query parameters")
	}

	res, err := c.animalService.List(ctx.Context(), authContextFrom(ctx), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animals loaded", res))
}

func (c *animalController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.animalService.Show(ctx.Context(), authContextFrom(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animal loaded", res))
}

func (c *animalController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.Update(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animal updated", res))
}

func (c *animalController) MoveStage(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.MoveStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.MoveStage(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stage updated", res))
}

func (c *animalController) StageHistory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.animalService.StageHistory(ctx.Context(), authContextFrom(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stage history loaded", res))
}

func (c *animalController) BulkArchive(ctx *fiber.Ctx) error {
	return c.bulk(ctx, c.animalService.BulkArchive, "Animals archived")
}

func (c *animalController) BulkActivate(ctx *fiber.Ctx) error {
	return c.bulk(ctx, c.animalService.BulkActivate, "Animals restored")
}

func (c *animalController) BulkStatus(ctx *fiber.Ctx) error {
	var req dto.BulkAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Status == "" {
		return apperr.Validation("status is required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.animalService.BulkStatus(ctx.Context(), authContextFrom(ctx), userIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Statuses updated", res))
}

func (c *animalController) AddPhoto(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return apperr.Validation("photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.Validation("could not read uploaded file")
	}
	defer file.Close()

	res, err := c.animalService.AddPhoto(ctx.Context(), authContextFrom(ctx), id, fileHeader.Filename, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Photo uploaded", res))
}

func (c *animalController) ReorderPhoto(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ReorderPhotoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.animalService.ReorderPhoto(ctx.Context(), authContextFrom(ctx), id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Photo reordered", nil))
}

func (c *animalController) DeletePhoto(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}
	photoId, err := parseIdParam(ctx, "photoId")
	if err != nil {
		return err
	}

	if err := c.animalService.DeletePhoto(ctx.Context(), authContextFrom(ctx), id, photoId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Photo deleted", nil))
}

type bulkAnimalFn func(context.Context, *entity.AuthContext, *dto.BulkAnimalRequest) (*dto.BulkResult, error)

func (c *animalController) bulk(ctx *fiber.Ctx, fn bulkAnimalFn, message string) error {
	var req dto.BulkAnimalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := fn(ctx.Context(), authContextFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id")
	}
	return id, nil
}
