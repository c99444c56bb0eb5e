package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AccessTokenCookie = "access_token"

// GetRawAccessToken returns the session token from:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}
