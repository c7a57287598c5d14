package middleware

import (
	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser is a Fiber middleware that rejects requests while the
// dashboard session is anonymous. Identity lives in process memory only;
// there are no tokens and no expiry.
func RequireUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authService.CurrentUser()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Login required",
			})
		}

		// Store the identity in the Fiber context for subsequent handlers
		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

// RequireAdmin rejects requests unless the current user has the admin role.
func RequireAdmin(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authService.CurrentUser()
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Login required",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin role required",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}
