package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"pyqbank_backend/internals/configs"
)

// CorsMiddleware allows the configured web client origin with credentials
// (the session cookie must survive cross-origin requests).
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.GetEnv("CLIENT_URL", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
