package handlers

import (
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetCategory(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error

		GetMenuItems(c *fiber.Ctx) error
		GetMenuItem(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		UploadMenuItemImage(c *fiber.Ctx) error

		GetOptions(c *fiber.Ctx) error
		CreateOption(c *fiber.Ctx) error
		UpdateOption(c *fiber.Ctx) error
		DeleteOption(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCategories(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) GetCategory(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCategory(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategory)
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.catalogService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *catalogHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.catalogService.UpdateCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *catalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *catalogHandler) GetMenuItems(c *fiber.Ctx) error {
	filter := catalog.MenuItemFilter{
		CategoryID:    c.Query("category_id"),
		AvailableOnly: c.QueryBool("available", false),
	}

	res, err := h.catalogService.GetMenuItems(c.Context(), filter)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *catalogHandler) GetMenuItem(c *fiber.Ctx) error {
	res, err := h.catalogService.GetMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItem)
}

func (h *catalogHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.catalogService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

func (h *catalogHandler) UpdateMenuItem(c *fiber.Ctx) error {
	req := new(domain.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	res, err := h.catalogService.UpdateMenuItem(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *catalogHandler) DeleteMenuItem(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteMenuItem(c.Context(), c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteMenuItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *catalogHandler) UploadMenuItemImage(c *fiber.Ctx) error {
	req := new(domain.UploadMenuImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMenuImage, err)
	}

	res, err := h.catalogService.UploadMenuItemImage(c.Context(), c.Params("id"), req.Image)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUploadMenuImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadMenuImage)
}

func (h *catalogHandler) GetOptions(c *fiber.Ctx) error {
	res, err := h.catalogService.GetOptions(c.Context(), c.Params("menuItemId"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetOptions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOptions)
}

func (h *catalogHandler) CreateOption(c *fiber.Ctx) error {
	req := new(domain.ItemOptionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOption, err)
	}

	res, err := h.catalogService.CreateOption(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateOption, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOption)
}

func (h *catalogHandler) UpdateOption(c *fiber.Ctx) error {
	req := new(domain.UpdateItemOptionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOption, err)
	}

	res, err := h.catalogService.UpdateOption(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateOption, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOption)
}

func (h *catalogHandler) DeleteOption(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteOption(c.Context(), c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteOption, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOption)
}
