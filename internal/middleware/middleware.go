package middleware

import (
	"context"
	"spice-garden/domain"
	"spice-garden/internal/api/presenters"
	"spice-garden/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	// RoleSource returns the role currently stored for a user.
	RoleSource interface {
		GetRole(ctx context.Context, userID string) (string, error)
	}

	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		AdminMiddleware(roles RoleSource) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

func NewMiddleware(allowOrigins string) Middleware {
	return &middleware{allowOrigins: allowOrigins}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := jwtService.GetUserByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// AdminMiddleware runs after AuthMiddleware and checks the stored role, not
// the one in the token.
func (m *middleware) AdminMiddleware(roles RoleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		role, err := roles.GetRole(c.Context(), userID)
		if err != nil {
			if domain.KindOf(err) == domain.KindNotFound {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MesaageUserNotAllowed, domain.ErrTokenInvalid)
			}
			return presenters.HandleError(c, domain.MesaageUserNotAllowed, err)
		}
		if role != domain.RoleAdmin {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrAdminOnly)
		}

		c.Locals("role", role)
		return c.Next()
	}
}
