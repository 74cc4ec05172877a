package bom

import (
	"bom-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for BOM reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the BOM routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bom")
	group.Get("/", h.HandleGetBom)
}

// HandleGetBom runs the BOM pipeline and returns the snapshot.
func (h *Handler) HandleGetBom(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snap, _, err := h.service.Generate(c.Context())
	if err != nil {
		l.Error("BOM generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snap)
}
