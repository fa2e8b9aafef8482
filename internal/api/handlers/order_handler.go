package handlers

import (
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetUserOrders(c *fiber.Ctx) error
		GetUserOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	res, err := h.orderService.PlaceOrder(c.Context(), userID, *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedPlaceOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func (h *orderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetUserOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetUserOrder(c.Context(), userID, c.Params("orderId"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}
