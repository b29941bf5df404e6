// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	activityservice "hrms_backend/internals/features/activity_logs/service"
	faceservice "hrms_backend/internals/features/face/service"
	notifservice "hrms_backend/internals/features/notifications/service"
	"hrms_backend/internals/middlewares"
	routeDetails "hrms_backend/internals/route/details"
)

// SetupRoutes builds the shared services and mounts every feature.
// It returns the activity recorder so main can drain it on shutdown.
func SetupRoutes(app *fiber.App, db *gorm.DB) *activityservice.DBRecorder {
	app.Use(middlewares.DBMiddleware(db))

	recorder := activityservice.NewDBRecorder(db)
	comparator := faceservice.NewHTTPComparator(configs.FaceAPIURL)
	notifier := notifservice.NewFromEnv(configs.TelegramToken, configs.TelegramChatID)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(app, db, recorder, comparator, notifier)

	log.Println("[INFO] Mounting Employee routes...")
	routeDetails.EmployeeRoutes(app, db)

	log.Println("[INFO] Mounting Document routes...")
	routeDetails.DocumentRoutes(app, db)

	log.Println("[INFO] Mounting Dashboard routes...")
	routeDetails.DashboardRoutes(app, db)

	log.Println("[INFO] Mounting Activity Log routes...")
	routeDetails.ActivityLogRoutes(app, db)

	return recorder
}
