package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	auth, err := h.authService.Login(req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(auth, "Login successful"))
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	profile, err := h.authService.Register(req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(models.CreatedResponse(profile, "User created successfully"))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Not authenticated"))
	}

	if err := h.authService.Logout(userID); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Logged out"))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Current and new password are required")
	}

	userID, ok := actorID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Not authenticated"))
	}

	if err := h.authService.ChangePassword(userID, req); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password updated successfully"))
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req models.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "A valid email is required")
	}

	if err := h.authService.RequestPasswordCode(req.Email); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Recovery code sent"))
}

// ValidateCode confirms the emailed code and returns a session token, so
// the client can call reset-password as an authenticated user.
func (h *AuthHandler) ValidateCode(c *fiber.Ctx) error {
	var req models.ValidateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Email and a 6-digit code are required")
	}

	auth, err := h.authService.ValidatePasswordCode(req.Email, req.Code)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(auth, "Code validated"))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "A new password of at least 6 characters is required")
	}

	userID, ok := actorID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(models.ErrorResponse(fiber.StatusUnauthorized, "Not authenticated"))
	}

	if err := h.authService.ResetPassword(userID, req.NewPassword); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password updated successfully"))
}
