package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StaffHandler handles HTTP requests for staff management. Its routes are
// mounted behind the admin-only middleware group.
type StaffHandler struct {
	service  *services.StaffService
	validate *validator.Validate
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the staff routes with the Fiber app.
func (h *StaffHandler) RegisterRoutes(router fiber.Router) {
	staffRoutes := router.Group("/staff")
	staffRoutes.Get("/", h.HandleGetStaff)
	staffRoutes.Get("/:id", h.HandleGetStaffByID)
	staffRoutes.Post("/", h.HandleCreateStaff)
	staffRoutes.Put("/:id", h.HandleUpdateStaff)
	staffRoutes.Delete("/:id", h.HandleDeleteStaff)
}

// HandleGetStaff retrieves all staff members.
func (h *StaffHandler) HandleGetStaff(c *fiber.Ctx) error {
	staff, err := h.service.GetAllStaff()
	if err != nil {
		log.Printf("Error getting all staff: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve staff",
			"error":   err.Error(),
		})
	}
	return c.JSON(staff)
}

// HandleGetStaffByID retrieves a single staff member.
func (h *StaffHandler) HandleGetStaffByID(c *fiber.Ctx) error {
	staffID := c.Params("id")
	staff, err := h.service.GetStaffByID(staffID)
	if err != nil {
		log.Printf("Error getting staff by ID %s: %v", staffID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Staff not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve staff",
			"error":   err.Error(),
		})
	}
	return c.JSON(staff)
}

// HandleCreateStaff creates a new staff member.
func (h *StaffHandler) HandleCreateStaff(c *fiber.Ctx) error {
	var staff models.Staff
	if err := c.BodyParser(&staff); err != nil {
		log.Printf("Error parsing staff request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(staff); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	createdStaff, err := h.service.CreateStaff(staff)
	if err != nil {
		log.Printf("Error creating staff: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create staff",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(createdStaff)
}

// HandleUpdateStaff applies a partial update to a staff member.
func (h *StaffHandler) HandleUpdateStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	var update models.StaffUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing staff update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updatedStaff, err := h.service.UpdateStaff(staffID, update)
	if err != nil {
		log.Printf("Error updating staff %s: %v", staffID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Staff not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update staff",
			"error":   err.Error(),
		})
	}
	return c.JSON(updatedStaff)
}

// HandleDeleteStaff removes a staff member permanently.
func (h *StaffHandler) HandleDeleteStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	if err := h.service.DeleteStaff(staffID); err != nil {
		log.Printf("Error deleting staff %s: %v", staffID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Staff not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete staff",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Staff deleted successfully",
	})
}
