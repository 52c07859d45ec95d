package controller

import (
	"rescueos-be/internal/dto"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/serverutils"
	"rescueos-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// publicController serves the adopter-facing surface. No auth, tenant comes
// from the slug in the path.
type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	RescuePage(ctx *fiber.Ctx) error
	BrowseAnimals(ctx *fiber.Ctx) error
	ShowAnimal(ctx *fiber.Ctx) error
	SubmitInquiry(ctx *fiber.Ctx) error
	TrackInquiry(ctx *fiber.Ctx) error
	SubmitReport(ctx *fiber.Ctx) error
}

type publicController struct {
	rescueService     service.IRescueService
	animalService     service.IAnimalService
	inquiryService    service.IInquiryService
	moderationService service.IModerationService
}

func NewPublicController(
	rescueService service.IRescueService,
	animalService service.IAnimalService,
	inquiryService service.IInquiryService,
	moderationService service.IModerationService,
) IPublicController {
	return &publicController{
		rescueService:     rescueService,
		animalService:     animalService,
		inquiryService:    inquiryService,
		moderationService: moderationService,
	}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public/v1")
	h.Get("/rescues/:slug", c.RescuePage)
	h.Get("/rescues/:slug/animals", c.BrowseAnimals)
	h.Get("/rescues/:slug/animals/:id", c.ShowAnimal)
	h.Post("/rescues/:slug/inquiries", c.SubmitInquiry)
	h.Get("/inquiries/track/:token", c.TrackInquiry)
	h.Post("/reports", c.SubmitReport)
}

func (c *publicController) RescuePage(ctx *fiber.Ctx) error {
	res, err := c.rescueService.PublicPage(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Rescue loaded", res))
}

func (c *publicController) BrowseAnimals(ctx *fiber.Ctx) error {
	var query dto.ListAnimalsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("invalid query parameters")
	}

	res, err := c.animalService.PublicList(ctx.Context(), ctx.Params("slug"), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animals loaded", res))
}

func (c *publicController) ShowAnimal(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.NotFound("animal not found")
	}

	res, err := c.animalService.PublicShow(ctx.Context(), ctx.Params("slug"), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Animal loaded", res))
}

func (c *publicController) SubmitInquiry(ctx *fiber.Ctx) error {
	var req dto.SubmitInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.inquiryService.SubmitPublic(ctx.Context(), ctx.Params("slug"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiry submitted", res))
}

func (c *publicController) TrackInquiry(ctx *fiber.Ctx) error {
	res, err := c.inquiryService.Track(ctx.Context(), ctx.Params("token"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Inquiry status", res))
}

func (c *publicController) SubmitReport(ctx *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moderationService.SubmitReport(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Report submitted", res))
}
