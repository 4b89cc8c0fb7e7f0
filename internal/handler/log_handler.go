package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/service"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

func (h *LogHandler) GetAll(c *fiber.Ctx) error {
	events, err := h.logService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(events, "Log events retrieved"))
}
