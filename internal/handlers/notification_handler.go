package handlers

import (
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler exposes the notification inbox.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleList)
	notificationRoutes.Patch("/:id/read", h.HandleMarkAsRead)
	notificationRoutes.Delete("/", h.HandleClearAll)
}

// HandleList returns the notification log, most recent first.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notifications": h.service.List(),
		"unread":        h.service.UnreadCount(),
	})
}

// HandleMarkAsRead clears the unread flag. Unknown ids are a no-op, so
// this always succeeds.
func (h *NotificationHandler) HandleMarkAsRead(c *fiber.Ctx) error {
	h.service.MarkAsRead(c.Params("id"))
	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}

// HandleClearAll empties the notification log.
func (h *NotificationHandler) HandleClearAll(c *fiber.Ctx) error {
	h.service.ClearAll()
	return c.JSON(fiber.Map{
		"message": "Notifications cleared",
	})
}
