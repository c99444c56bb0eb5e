package auth

import (
	"github.com/gofiber/fiber/v2"

	"pyqbank_backend/internals/constants"
	helper "pyqbank_backend/internals/helpers"
)

// OnlyRoles gates a route on the caller's role.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Admin access required for this route")
	}
}

func AdminOnly() fiber.Handler {
	return OnlyRoles(constants.RoleAdmin)
}
