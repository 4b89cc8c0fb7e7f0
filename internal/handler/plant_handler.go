package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

type PlantHandler struct {
	plantService *service.PlantService
	validator    *utils.Validator
}

func NewPlantHandler(plantService *service.PlantService, validator *utils.Validator) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
		validator:    validator,
	}
}

func (h *PlantHandler) GetAll(c *fiber.Ctx) error {
	plants, err := h.plantService.GetAll(visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plants, "Plants retrieved"))
}

// GetByTaxonomy lists the plants under one herbarium type and family.
func (h *PlantHandler) GetByTaxonomy(c *fiber.Ctx) error {
	herbariumTypeID, err := parseID(c, "herbariumTypeId")
	if err != nil {
		return badRequest(c, "Invalid herbarium type id")
	}
	familyID, err := parseID(c, "familyId")
	if err != nil {
		return badRequest(c, "Invalid family id")
	}

	plants, err := h.plantService.GetByTaxonomy(herbariumTypeID, familyID, visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plants, "Plants retrieved"))
}

func (h *PlantHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	plant, err := h.plantService.GetByID(id, visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plant, "Plant retrieved"))
}

func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var req models.CreatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Family id and scientific name are required")
	}

	userID, _ := actorID(c)
	plant, err := h.plantService.Create(req, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(models.CreatedResponse(plant, "Plant created"))
}

func (h *PlantHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	var req models.UpdatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Invalid fields")
	}

	userID, _ := actorID(c)
	plant, err := h.plantService.Update(id, req, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plant, "Plant updated"))
}

func (h *PlantHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	userID, _ := actorID(c)
	plant, err := h.plantService.ToggleStatus(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plant, "Plant status toggled"))
}

func (h *PlantHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	userID, _ := actorID(c)
	plant, err := h.plantService.SoftDelete(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(plant, "Plant deleted"))
}
