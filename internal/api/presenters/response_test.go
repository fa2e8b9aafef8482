package presenters

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"spice-garden/domain"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, handler fiber.Handler) (int, ErrorBody) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleErrorMapsKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   domain.ErrorKind
	}{
		{domain.ErrCartEmpty, fiber.StatusBadRequest, domain.KindValidation},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, domain.KindUnauthorized},
		{domain.ErrCartItemForbidden, fiber.StatusForbidden, domain.KindForbidden},
		{domain.ErrOrderNotFound, fiber.StatusNotFound, domain.KindNotFound},
		{domain.ErrIllegalOrderTransition, fiber.StatusBadRequest, domain.KindConflict},
		{fmt.Errorf("delete category: %w", domain.ErrCategoryHasItems), fiber.StatusBadRequest, domain.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, body := call(t, func(c *fiber.Ctx) error {
				return HandleError(c, "failed", tt.err)
			})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.kind, body.Kind)
			assert.False(t, body.Status)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestHandleErrorHidesInternalDetail(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return HandleError(c, "failed", errors.New("pq: connection refused"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.KindInternal, body.Kind)
	assert.Equal(t, domain.MessageInternalError, body.Error)
}

func TestErrorResponseDerivesKindFromStatus(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, errors.New("unexpected EOF"))
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.KindValidation, body.Kind)
	assert.Equal(t, "unexpected EOF", body.Error)

	_, body = call(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrAdminOnly)
	})
	assert.Equal(t, domain.KindForbidden, body.Kind)
}
