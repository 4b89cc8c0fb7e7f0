package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

type HerbariumTypeHandler struct {
	herbariumTypeService *service.HerbariumTypeService
	validator            *utils.Validator
}

func NewHerbariumTypeHandler(herbariumTypeService *service.HerbariumTypeService, validator *utils.Validator) *HerbariumTypeHandler {
	return &HerbariumTypeHandler{
		herbariumTypeService: herbariumTypeService,
		validator:            validator,
	}
}

func (h *HerbariumTypeHandler) GetAll(c *fiber.Ctx) error {
	herbariumTypes, err := h.herbariumTypeService.GetAll(visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(herbariumTypes, "Herbarium types retrieved"))
}

func (h *HerbariumTypeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}

	herbariumType, err := h.herbariumTypeService.GetByID(id, visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(herbariumType, "Herbarium type retrieved"))
}

func (h *HerbariumTypeHandler) Create(c *fiber.Ctx) error {
	var req models.CreateHerbariumTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Name is required")
	}

	userID, _ := actorID(c)
	herbariumType, err := h.herbariumTypeService.Create(req, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(models.CreatedResponse(herbariumType, "Herbarium type created"))
}

func (h *HerbariumTypeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}

	var req models.UpdateHerbariumTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Invalid fields")
	}

	userID, _ := actorID(c)
	herbariumType, err := h.herbariumTypeService.Update(id, req, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(herbariumType, "Herbarium type updated"))
}

func (h *HerbariumTypeHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}

	userID, _ := actorID(c)
	herbariumType, err := h.herbariumTypeService.ToggleStatus(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(herbariumType, "Herbarium type status toggled"))
}

func (h *HerbariumTypeHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}

	userID, _ := actorID(c)
	herbariumType, err := h.herbariumTypeService.SoftDelete(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(herbariumType, "Herbarium type deleted"))
}
