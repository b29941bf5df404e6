package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "hrms_backend/internals/features/documents/controller"
)

func DocumentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := documentController.NewDocumentController(db)

	documents := app.Group("/documents")
	documents.Get("/:kind/:employeeId", ctrl.Generate)
}
