package controller

import (
	"notestack-be/internal/dto"
	"notestack-be/internal/entity"
	"notestack-be/internal/pkg/serverutils"
	"notestack-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// nodeController carries the polymorphic rename/delete surface: the node
// kind travels in the path, so one route pair covers all three levels.
type INodeController interface {
	RegisterRoutes(r fiber.Router)
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type nodeController struct {
	service service.IHierarchyService
}

func NewNodeController(service service.IHierarchyService) INodeController {
	return &nodeController{service: service}
}

func (c *nodeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/node/v1")
	h.Put(":kind/:id", c.Rename)
	h.Delete(":kind/:id", c.Delete)
}

func (c *nodeController) Rename(ctx *fiber.Ctx) error {
	kind, err := entity.ParseNodeKind(ctx.Params("kind"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.RenameNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Kind = kind
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Rename(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rename "+string(kind), res))
}

func (c *nodeController) Delete(ctx *fiber.Ctx) error {
	kind, err := entity.ParseNodeKind(ctx.Params("kind"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), kind, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete "+string(kind), nil))
}
