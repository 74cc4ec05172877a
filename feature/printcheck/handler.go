package printcheck

import (
	"bom-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for print check reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the print check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/printcheck")
	group.Get("/", h.HandleGetPrintCheck)
}

// HandleGetPrintCheck runs the reconciliation and returns the buckets with
// their summary.
func (h *Handler) HandleGetPrintCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	buckets, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Print check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"summary": buckets.Summary(),
		"buckets": buckets,
	})
}
