package controller

import (
	"notestack-be/internal/pkg/serverutils"
	"notestack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHierarchyController interface {
	RegisterRoutes(r fiber.Router)
	GetTree(ctx *fiber.Ctx) error
}

type hierarchyController struct {
	service service.IHierarchyService
}

func NewHierarchyController(service service.IHierarchyService) IHierarchyController {
	return &hierarchyController{service: service}
}

func (c *hierarchyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hierarchy/v1")
	h.Get("", c.GetTree)
}

func (c *hierarchyController) GetTree(ctx *fiber.Ctx) error {
	res := c.service.GetTree(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get hierarchy", res))
}
