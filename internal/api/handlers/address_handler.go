package handlers

import (
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/address"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AddressHandler interface {
		GetAddresses(c *fiber.Ctx) error
		AddAddress(c *fiber.Ctx) error
		UpdateAddress(c *fiber.Ctx) error
		DeleteAddress(c *fiber.Ctx) error
		SetDefault(c *fiber.Ctx) error
	}

	addressHandler struct {
		addressService address.AddressService
		validator      *validator.Validate
	}
)

func NewAddressHandler(addressService address.AddressService, validator *validator.Validate) AddressHandler {
	return &addressHandler{
		addressService: addressService,
		validator:      validator,
	}
}

func (h *addressHandler) GetAddresses(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.addressService.GetAddresses(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetAddresses, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAddresses)
}

func (h *addressHandler) AddAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddressRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddAddress, err)
	}

	res, err := h.addressService.AddAddress(c.Context(), userID, *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddAddress, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddAddress)
}

func (h *addressHandler) UpdateAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddressRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAddress, err)
	}

	res, err := h.addressService.UpdateAddress(c.Context(), userID, c.Params("id"), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateAddress, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAddress)
}

func (h *addressHandler) DeleteAddress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.addressService.DeleteAddress(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteAddress, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAddress)
}

func (h *addressHandler) SetDefault(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.addressService.SetDefault(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedSetDefault, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetDefault)
}
