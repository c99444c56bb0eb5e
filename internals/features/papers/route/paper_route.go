package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pyqbank_backend/internals/features/papers/controller"
	ossHelper "pyqbank_backend/internals/helpers/oss"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

func PaperRoutes(app *fiber.App, db *gorm.DB, oss *ossHelper.OSSService) {
	paperController := controller.NewPaperController(db, oss)

	papers := app.Group("/api/papers")

	// 🌍 Public (anonymous sees approved papers only)
	papers.Get("/", authMw.OptionalAuthMiddleware(db), paperController.GetPapers)
	papers.Put("/:id/download", authMw.OptionalAuthMiddleware(db), paperController.IncrementDownload)

	// 🔒 Admin only
	papers.Get("/stats/overview", authMw.AuthMiddleware(db), authMw.AdminOnly(), paperController.GetPaperStats)

	papers.Get("/:id", authMw.OptionalAuthMiddleware(db), paperController.GetPaper)

	// 🔒 Authenticated
	papers.Post("/", authMw.AuthMiddleware(db), paperController.CreatePaper)
	papers.Put("/:id", authMw.AuthMiddleware(db), paperController.UpdatePaper)
	papers.Delete("/:id", authMw.AuthMiddleware(db), paperController.DeletePaper)
}
