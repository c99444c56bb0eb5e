package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pyqbank_backend/internals/features/subjects/controller"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

func SubjectRoutes(app *fiber.App, db *gorm.DB) {
	subjectController := controller.NewSubjectController(db)

	subjects := app.Group("/api/subjects")

	// 🌍 Public
	subjects.Get("/", subjectController.GetSubjects)
	subjects.Get("/filter", subjectController.FilterSubjects)
	subjects.Get("/:id", subjectController.GetSubject)

	// 🔒 Admin only
	subjects.Post("/", authMw.AuthMiddleware(db), authMw.AdminOnly(), subjectController.CreateSubject)
	subjects.Delete("/:id", authMw.AuthMiddleware(db), authMw.AdminOnly(), subjectController.DeleteSubject)
}
