package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	dashboardController "hrms_backend/internals/features/dashboard/controller"
	authmw "hrms_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := app.Group("/dashboard", authmw.OptionalJWT(configs.JWTSecret))
	dashboard.Get("/attendance", ctrl.AttendanceHistory)
}
