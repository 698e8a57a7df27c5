package controller

import (
	"notestack-be/internal/dto"
	"notestack-be/internal/pkg/serverutils"
	"notestack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISectionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type sectionController struct {
	service service.IHierarchyService
}

func NewSectionController(service service.IHierarchyService) ISectionController {
	return &sectionController{service: service}
}

func (c *sectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/section/v1")
	h.Post("", c.Create)
}

func (c *sectionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSection(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create section", res))
}
