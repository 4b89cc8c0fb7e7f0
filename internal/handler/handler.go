package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/token"
)

// fail maps a service error onto the response envelope. Unexpected
// errors become a generic 500; nothing internal leaks to the client.
func fail(c *fiber.Ctx, err error) error {
	status, message := statusForError(err)
	return c.Status(status).JSON(models.ErrorResponse(status, message))
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSessionRevoked),
		errors.Is(err, token.ErrTokenExpired),
		errors.Is(err, token.ErrTokenMalformed):
		return fiber.StatusUnauthorized, "Invalid token"
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, service.ErrEmailTaken):
		return fiber.StatusConflict, "Email already registered"
	case errors.Is(err, service.ErrImageLimitReached):
		return fiber.StatusConflict, "Plant already has the maximum number of images"
	case errors.Is(err, service.ErrCodeNotSent):
		return fiber.StatusBadRequest, "Could not send recovery code"
	case errors.Is(err, service.ErrInvalidCode):
		return fiber.StatusBadRequest, "Invalid recovery code"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(models.ErrorResponse(fiber.StatusBadRequest, message))
}

// actorID returns the authenticated user id set by the auth middleware.
func actorID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}

// visibility selects the read path: authenticated callers see
// status-agnostic rows, anonymous callers only active ones.
func visibility(c *fiber.Ctx) repository.Visibility {
	if _, ok := actorID(c); ok {
		return repository.VisibilityAdmin
	}
	return repository.VisibilityPublic
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
