package handlers

import (
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/admin"
	"spice-garden/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetDashboardStats(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, orderService order.OrderService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		orderService: orderService,
		validator:    validator,
	}
}

func (h *adminHandler) GetDashboardStats(c *fiber.Ctx) error {
	res, err := h.adminService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetDashboardStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *adminHandler) GetOrders(c *fiber.Ctx) error {
	page, limit := paginationParams(c)

	orders, count, err := h.orderService.GetOrders(c.Context(), c.Query("status"), page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, paginated(orders, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *adminHandler) GetOrder(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrder(c.Context(), c.Params("orderId"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *adminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	res, err := h.orderService.UpdateOrderStatus(c.Context(), c.Params("orderId"), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateOrderStatus, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}
