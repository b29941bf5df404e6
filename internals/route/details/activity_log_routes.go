package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "hrms_backend/internals/features/activity_logs/controller"
)

func ActivityLogRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := activityController.NewActivityLogController(db)

	logs := app.Group("/activity-logs")
	logs.Get("/", ctrl.List)
}
