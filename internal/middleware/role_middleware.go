package middleware

import (
	"hrms-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

// RequireRole denies the request unless the authenticated role is in the
// allowed set. SUPERADMIN passes every gate (see model.RoleAllowed).
func RequireRole(allowed ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied: missing role"})
		}

		if model.RoleAllowed(model.Role(roleStr), allowed...) {
			return c.Next()
		}

		required := make([]string, len(allowed))
		for i, r := range allowed {
			required[i] = string(r)
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":          "access denied",
			"required_roles": required,
		})
	}
}
