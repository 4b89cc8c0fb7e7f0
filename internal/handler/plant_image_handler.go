package handler

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
	"github.com/herbarium/herbarium-backend/pkg/utils"
)

type PlantImageHandler struct {
	plantImageService *service.PlantImageService
	validator         *utils.Validator
}

func NewPlantImageHandler(plantImageService *service.PlantImageService, validator *utils.Validator) *PlantImageHandler {
	return &PlantImageHandler{
		plantImageService: plantImageService,
		validator:         validator,
	}
}

func (h *PlantImageHandler) GetAll(c *fiber.Ctx) error {
	images, err := h.plantImageService.GetAll(visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(images, "Plant images retrieved"))
}

func (h *PlantImageHandler) GetByPlantID(c *fiber.Ctx) error {
	plantID, err := parseID(c, "plantId")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	images, err := h.plantImageService.GetByPlantID(plantID, visibility(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(images, "Plant images retrieved"))
}

// Upload accepts up to MaxLivePlantImages files under the images field.
// Every file is checked before any of them is stored.
func (h *PlantImageHandler) Upload(c *fiber.Ctx) error {
	plantID, err := parseID(c, "plantId")
	if err != nil {
		return badRequest(c, "Invalid plant id")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "At least one image file is required")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return badRequest(c, "At least one image file is required")
	}
	if len(files) > models.MaxLivePlantImages {
		return badRequest(c, fmt.Sprintf("At most %d images per request", models.MaxLivePlantImages))
	}
	for _, file := range files {
		if err := h.checkImageFile(file); err != nil {
			return badRequest(c, "Unsupported image file")
		}
	}

	userID, _ := actorID(c)
	description := c.FormValue("description")

	images := make([]models.PlantImage, 0, len(files))
	for _, file := range files {
		image, err := h.plantImageService.Upload(plantID, file, description, userID)
		if err != nil {
			return fail(c, err)
		}
		images = append(images, *image)
	}

	return c.Status(fiber.StatusCreated).
		JSON(models.CreatedResponse(images, "Images uploaded"))
}

// Replace swaps the image file; the previous one is archived.
func (h *PlantImageHandler) Replace(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid image id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "An image file is required")
	}
	if err := h.checkImageFile(file); err != nil {
		return badRequest(c, "Unsupported image file")
	}

	var description *string
	if v := c.FormValue("description"); v != "" {
		description = &v
	}

	userID, _ := actorID(c)
	image, err := h.plantImageService.Replace(id, file, description, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(image, "Image updated"))
}

func (h *PlantImageHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid image id")
	}

	userID, _ := actorID(c)
	image, err := h.plantImageService.ToggleStatus(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(image, "Image status toggled"))
}

func (h *PlantImageHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid image id")
	}

	userID, _ := actorID(c)
	image, err := h.plantImageService.SoftDelete(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(image, "Image deleted"))
}

func (h *PlantImageHandler) checkImageFile(file *multipart.FileHeader) error {
	return h.validator.Struct(models.PlantImageFile{
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
}
