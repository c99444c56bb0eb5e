package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackRoute "pyqbank_backend/internals/features/feedbacks/route"
	paperRoute "pyqbank_backend/internals/features/papers/route"
	subjectRoute "pyqbank_backend/internals/features/subjects/route"
	authRoute "pyqbank_backend/internals/features/users/auth/route"
	userRoute "pyqbank_backend/internals/features/users/user/route"
	ossHelper "pyqbank_backend/internals/helpers/oss"
)

// SetupRoutes mounts every feature under /api. The OSS client is built once
// here and shared; when storage credentials are absent the server still
// boots, and upload endpoints answer 502 until they are configured.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ossSvc, err := ossHelper.NewOSSServiceFromEnv("papers")
	if err != nil {
		log.Printf("[WARN] OSS not configured, uploads disabled: %v", err)
		ossSvc = nil
	}

	authRoute.AuthRoutes(app, db)
	userRoute.UserRoutes(app, db)
	paperRoute.PaperRoutes(app, db, ossSvc)
	subjectRoute.SubjectRoutes(app, db)
	feedbackRoute.FeedbackRoutes(app, db)
}
