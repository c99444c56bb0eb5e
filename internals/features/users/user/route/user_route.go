package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pyqbank_backend/internals/features/users/user/controller"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controller.NewAdminUserController(db)

	// 🔒 Admin only
	admin := app.Group("/api/users", authMw.AuthMiddleware(db), authMw.AdminOnly())
	admin.Get("/", userController.ListUsers)
	admin.Get("/stats", userController.GetUserStats)
	admin.Get("/:id", userController.GetUser)
	admin.Put("/:id", userController.UpdateUser)
	admin.Delete("/:id", userController.DeleteUser)
}
