package presenters

import (
	"errors"
	"spice-garden/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		Status  bool             `json:"status"`
		Message string           `json:"message"`
		Kind    domain.ErrorKind `json:"kind"`
		Error   string           `json:"error"`
	}
)

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation:   fiber.StatusBadRequest,
	domain.KindUnauthorized: fiber.StatusUnauthorized,
	domain.KindForbidden:    fiber.StatusForbidden,
	domain.KindNotFound:     fiber.StatusNotFound,
	domain.KindConflict:     fiber.StatusBadRequest,
	domain.KindInternal:     fiber.StatusInternalServerError,
}

func kindForStatus(status int) domain.ErrorKind {
	switch status {
	case fiber.StatusBadRequest:
		return domain.KindValidation
	case fiber.StatusUnauthorized:
		return domain.KindUnauthorized
	case fiber.StatusForbidden:
		return domain.KindForbidden
	case fiber.StatusNotFound:
		return domain.KindNotFound
	default:
		return domain.KindInternal
	}
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error with an explicit status, used for failures
// detected in the handler itself such as a malformed body.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	kind := kindForStatus(status)
	var de *domain.Error
	if errors.As(err, &de) {
		kind = de.Kind
	}

	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return c.Status(status).JSON(ErrorBody{
		Status:  false,
		Message: message,
		Kind:    kind,
		Error:   detail,
	})
}

// HandleError maps a service error to its status. Internal errors are logged
// and their text is not sent to the client.
func HandleError(c *fiber.Ctx, message string, err error) error {
	kind := domain.KindOf(err)
	status := kindStatus[kind]

	if kind == domain.KindInternal {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		return c.Status(status).JSON(ErrorBody{
			Status:  false,
			Message: message,
			Kind:    kind,
			Error:   domain.MessageInternalError,
		})
	}

	return c.Status(status).JSON(ErrorBody{
		Status:  false,
		Message: message,
		Kind:    kind,
		Error:   err.Error(),
	})
}
