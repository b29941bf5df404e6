// file: internals/features/attendance/controller/attendance_export_controller.go
package controller

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/attendance/model"
	"hrms_backend/internals/features/attendance/repository"
	helper "hrms_backend/internals/helpers"
)

const exportSheet = "Attendance"

/* ===================== EXPORT (XLSX) ===================== */
// GET /attendance/export — same filters as List, streams a workbook.
func (ctrl *AttendanceController) Export(c *fiber.Ctx) error {
	status := c.Query("status")
	if !constants.IsValidAttendanceStatus(status) {
		status = ""
	}

	rows, err := ctrl.repo.List(c.UserContext(), repository.ListFilter{
		EmployeeID: c.Query("employeeId"),
		Date:       c.Query("date"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Status:     status,
	})
	if err != nil {
		log.Printf("Error exporting attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while exporting attendance")
	}

	buf, err := buildAttendanceWorkbook(rows)
	if err != nil {
		log.Printf("Error building attendance workbook: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while exporting attendance")
	}

	filename := fmt.Sprintf("attendance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.SendStream(bytes.NewReader(buf.Bytes()))
}

func buildAttendanceWorkbook(rows []model.AttendanceModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"Employee ID", "Employee Name", "Date", "Check In", "Check Out", "Status", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		values := []interface{}{
			row.AttendanceEmployeeID,
			row.AttendanceEmployeeName,
			row.AttendanceDate,
			strOrDash(row.AttendanceCheckIn),
			strOrDash(row.AttendanceCheckOut),
			row.AttendanceStatus,
			strOrDash(row.AttendanceNotes),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
