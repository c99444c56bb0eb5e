package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pyqbank_backend/internals/features/users/auth/controller"
	middlewares "pyqbank_backend/internals/middlewares"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api/auth")

	// 🔓 Public
	base.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	base.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	base.Post("/forgotpassword", middlewares.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	base.Put("/resetpassword/:token", authController.ResetPassword)

	// Google federated login
	base.Get("/google", authController.GoogleRedirect)
	base.Get("/google/callback", authController.GoogleCallback)
	base.Post("/google", authController.GoogleTokenLogin)

	// 🔒 Authenticated
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.GetMe)
	protected.Put("/updatedetails", authController.UpdateDetails)
	protected.Put("/updatepassword", authController.UpdatePassword)
}
