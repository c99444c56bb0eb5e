package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pyqbank_backend/internals/constants"
)

// Locals keys populated by the auth middlewares.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocUserName  = "user_name"
	LocUserEmail = "user_email"
)

// GetUserID returns the authenticated caller's id, or uuid.Nil when the
// request is anonymous.
func GetUserID(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(LocUserID).(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}

func IsAuthenticated(c *fiber.Ctx) bool {
	return GetUserID(c) != uuid.Nil
}
