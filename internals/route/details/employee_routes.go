package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeController "hrms_backend/internals/features/employees/controller"
)

func EmployeeRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := employeeController.NewEmployeeController(db)

	employees := app.Group("/employees")
	employees.Get("/", ctrl.List)
	employees.Get("/:employeeId", ctrl.GetByEmployeeID)
}
