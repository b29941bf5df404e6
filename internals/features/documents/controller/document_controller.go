package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/documents/service"
	"hrms_backend/internals/features/employees/repository"
	helper "hrms_backend/internals/helpers"
)

type DocumentController struct {
	employees *repository.EmployeeRepository
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{employees: repository.NewEmployeeRepository(db)}
}

/* ===================== GENERATE ===================== */
// GET /documents/:kind/:employeeId — kind is one of
// coe | pds | serviceRecord | file201 (unknown falls back to coe).
func (ctrl *DocumentController) Generate(c *fiber.Ctx) error {
	emp, err := ctrl.employees.FindByEmployeeID(c.UserContext(), c.Params("employeeId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Employee not found")
		}
		log.Printf("Error generating document: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while generating document")
	}

	doc, err := service.Generate(c.Params("kind"), *emp)
	if err != nil {
		log.Printf("Error generating document: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while generating document")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}
