package controller

import (
	"notestack-be/internal/dto"
	"notestack-be/internal/pkg/serverutils"
	"notestack-be/internal/service"
	"notestack-be/pkg/markdown"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateContent(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type pageController struct {
	service  service.IHierarchyService
	renderer *markdown.Renderer
}

func NewPageController(service service.IHierarchyService, renderer *markdown.Renderer) IPageController {
	return &pageController{service: service, renderer: renderer}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/page/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/content", c.UpdateContent)
	h.Get(":id/preview", c.Preview)
}

func (c *pageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create page", res))
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.ShowPage(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}

func (c *pageController) UpdateContent(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdatePageContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	res, err := c.service.UpdatePageContent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update page content", res))
}

func (c *pageController) Preview(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	page, err := c.service.ShowPage(ctx.Context(), id)
	if err != nil {
		return err
	}

	html, err := c.renderer.Render(page.Content)
	if err != nil {
		return err
	}

	res := dto.PreviewPageResponse{
		Id:    page.Id,
		Title: page.Title,
		Html:  html,
	}
	return ctx.JSON(serverutils.SuccessResponse("Success render page preview", res))
}
