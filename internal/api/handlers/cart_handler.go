package handlers

import (
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		EnsureCart(c *fiber.Ctx) error
		GetCurrentCart(c *fiber.Ctx) error
		AddCartItem(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) EnsureCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cartService.EnsureCart(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedEnsureCart, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEnsureCart)
}

func (h *cartHandler) GetCurrentCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cartService.GetCurrentCart(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetCart, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItem, err)
	}

	res, err := h.cartService.AddCartItem(c.Context(), userID, *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddCartItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCartItem)
}

func (h *cartHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	res, err := h.cartService.UpdateCartItem(c.Context(), userID, c.Params("id"), *req.Quantity)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateCartItem, err)
	}
	if res == nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *cartHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.RemoveCartItem(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedRemoveCartItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}
