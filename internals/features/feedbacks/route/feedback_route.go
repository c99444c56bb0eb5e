package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pyqbank_backend/internals/features/feedbacks/controller"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

func FeedbackRoutes(app *fiber.App, db *gorm.DB) {
	feedbackController := controller.NewFeedbackController(db)

	feedback := app.Group("/api/feedback")

	// 🌍 Public
	feedback.Get("/paper/:paperId", feedbackController.GetPaperFeedbacks)

	// 🔒 Authenticated
	feedback.Post("/", authMw.AuthMiddleware(db), feedbackController.CreateFeedback)
	feedback.Get("/me", authMw.AuthMiddleware(db), feedbackController.GetMyFeedbacks)
	feedback.Delete("/:id", authMw.AuthMiddleware(db), feedbackController.DeleteFeedback)

	// 🔒 Admin only
	feedback.Get("/", authMw.AuthMiddleware(db), authMw.AdminOnly(), feedbackController.GetFeedbacks)
	feedback.Put("/:id", authMw.AuthMiddleware(db), authMw.AdminOnly(), feedbackController.UpdateFeedback)
}
