package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/dto"
	"hrms_backend/internals/features/employees/repository"
	helper "hrms_backend/internals/helpers"
)

type EmployeeController struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{repo: repository.NewEmployeeRepository(db)}
}

/* ===================== LIST ===================== */
// GET /employees
func (ctrl *EmployeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctrl.repo.List(c.UserContext(), repository.ListFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Offset:     paging.Offset,
		Limit:      paging.Limit,
	})
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching employees")
	}

	return helper.SuccessList(c,
		dto.NewEmployeeResponses(rows),
		helper.BuildPagination(total, paging, len(rows)),
	)
}

/* ===================== GET BY EMPLOYEE ID ===================== */
// GET /employees/:employeeId
func (ctrl *EmployeeController) GetByEmployeeID(c *fiber.Ctx) error {
	row, err := ctrl.repo.FindByEmployeeID(c.UserContext(), c.Params("employeeId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Employee not found")
		}
		log.Printf("Error fetching employee: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching employee")
	}
	return helper.JSON(c, dto.NewEmployeeResponse(*row))
}
