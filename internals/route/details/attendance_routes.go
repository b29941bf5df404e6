package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityservice "hrms_backend/internals/features/activity_logs/service"
	attendanceController "hrms_backend/internals/features/attendance/controller"
	faceservice "hrms_backend/internals/features/face/service"
	notifservice "hrms_backend/internals/features/notifications/service"
	"hrms_backend/internals/middlewares"
)

func AttendanceRoutes(
	app *fiber.App,
	db *gorm.DB,
	recorder activityservice.Recorder,
	comparator faceservice.Comparator,
	notifier *notifservice.Notifier,
) {
	ctrl := attendanceController.NewAttendanceController(db, recorder, comparator, notifier)

	attendance := app.Group("/attendance")
	attendance.Get("/", ctrl.List)
	attendance.Get("/export", ctrl.Export)
	attendance.Post("/verify-face", middlewares.VerifyFaceRateLimiter(), ctrl.VerifyFace)
	attendance.Get("/:id", ctrl.GetByID)
	attendance.Post("/", ctrl.Create)
	attendance.Put("/:id", ctrl.Update)
	attendance.Delete("/:id", ctrl.Delete)
}
