package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/pkg/token"
)

// Authenticator validates a bearer token against the session registry.
type Authenticator interface {
	Authenticate(tokenString string) (*token.Claims, error)
}

// AuthMiddleware rejects requests without a valid, currently-active
// session token. Claims land in locals as userID and roleID.
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := auth.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("roleID", claims.RoleID)

		return c.Next()
	}
}

// OptionalAuthMiddleware upgrades read endpoints for authenticated
// callers. Without an Authorization header the request continues
// anonymously; once a header is present it must verify.
func OptionalAuthMiddleware(auth Authenticator) fiber.Handler {
	required := AuthMiddleware(auth)
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		return required(c)
	}
}
