package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

type FamilyHandler struct {
	familyService *service.FamilyService
	validator     *utils.Validator
}

func NewFamilyHandler(familyService *service.FamilyService, validator *utils.Validator) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		validator:     validator,
	}
}

func (h *FamilyHandler) GetAll(c *fiber.Ctx) error {
	families, err := h.familyService.GetAll(visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(families, "Families retrieved"))
}

func (h *FamilyHandler) GetByHerbariumType(c *fiber.Ctx) error {
	herbariumTypeID, err := parseID(c, "herbariumTypeId")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}

	families, err := h.familyService.GetByHerbariumType(herbariumTypeID, visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(families, "Families retrieved"))
}

func (h *FamilyHandler) Create(c *fiber.Ctx) error {
	var req models.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Herbarium type id and name are required")
	}

	userID, _ := actorID(c)
	family, err := h.familyService.Create(req, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(models.CreatedResponse(family, "Family created"))
}

func (h *FamilyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid family id")
	}

	var req models.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Invalid fields")
	}

	userID, _ := actorID(c)
	family, err := h.familyService.Update(id, req, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(family, "Family updated"))
}

func (h *FamilyHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid family id")
	}

	userID, _ := actorID(c)
	family, err := h.familyService.ToggleStatus(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(family, "Family status toggled"))
}

func (h *FamilyHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid family id")
	}

	userID, _ := actorID(c)
	family, err := h.familyService.SoftDelete(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(family, "Family deleted"))
}
