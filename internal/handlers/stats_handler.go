package handlers

import (
	"log"

	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler exposes the dashboard analytics summary.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// RegisterRoutes registers the stats routes with the Fiber app.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	statsRoutes := router.Group("/stats")
	statsRoutes.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard returns order counts, revenue and low-stock counts.
func (h *StatsHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
