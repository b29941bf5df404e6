// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms_backend/internals/constants"
	activityservice "hrms_backend/internals/features/activity_logs/service"
	"hrms_backend/internals/features/attendance/dto"
	"hrms_backend/internals/features/attendance/repository"
	emprepo "hrms_backend/internals/features/employees/repository"
	faceservice "hrms_backend/internals/features/face/service"
	notifservice "hrms_backend/internals/features/notifications/service"
	helper "hrms_backend/internals/helpers"
)

var validate = newValidator()

type AttendanceController struct {
	repo      *repository.AttendanceRepository
	employees *emprepo.EmployeeRepository

	recorder   activityservice.Recorder
	comparator faceservice.Comparator
	notifier   *notifservice.Notifier
}

func NewAttendanceController(
	db *gorm.DB,
	recorder activityservice.Recorder,
	comparator faceservice.Comparator,
	notifier *notifservice.Notifier,
) *AttendanceController {
	return &AttendanceController{
		repo:       repository.NewAttendanceRepository(db),
		employees:  emprepo.NewEmployeeRepository(db),
		recorder:   recorder,
		comparator: comparator,
		notifier:   notifier,
	}
}

/* ===================== LIST ===================== */
// GET /attendance
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	// An invalid status filter is silently dropped, not rejected.
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
		log.Printf("Error fetching attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching attendance")
	}

	return helper.JSON(c, dto.NewAttendanceResponses(rows))
}

/* ===================== GET BY ID ===================== */
// GET /attendance/:id
func (ctrl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}

	row, err := ctrl.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
		}
		log.Printf("Error fetching attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching attendance")
	}

	return helper.JSON(c, dto.NewAttendanceResponse(*row))
}

/* ===================== CREATE (upsert on employee+date) ===================== */
// POST /attendance
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := req.ToModel()
	saved, created, err := ctrl.repo.Upsert(c.UserContext(), &rec)
	if err != nil {
		log.Printf("Error creating attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while creating attendance")
	}

	action := constants.ActionUpdate
	verb := "updated"
	if created {
		action = constants.ActionCreate
		verb = "created"
	}
	ctrl.recorder.Record(activityservice.Event{
		UserName:     actorName(req.CreatedBy),
		ActionType:   action,
		ResourceType: constants.ResourceAttendance,
		ResourceID:   saved.AttendanceID.String(),
		ResourceName: fmt.Sprintf("%s - %s", saved.AttendanceEmployeeName, saved.AttendanceDate),
		Description: fmt.Sprintf("Attendance record %s for %s (%s) on %s",
			verb, saved.AttendanceEmployeeName, saved.AttendanceEmployeeID, saved.AttendanceDate),
		IPAddress: c.IP(),
		Metadata: map[string]interface{}{
			"employeeId": saved.AttendanceEmployeeID,
			"date":       saved.AttendanceDate,
			"status":     saved.AttendanceStatus,
		},
	})
	ctrl.notifier.AttendanceSaved(saved, created)

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Attendance record saved successfully",
		dto.NewAttendanceResponse(*saved))
}

/* ===================== UPDATE BY ID ===================== */
// PUT /attendance/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	affected, err := ctrl.repo.UpdateFields(c.UserContext(), id, fields)
	if err != nil {
		log.Printf("Error updating attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while updating attendance")
	}
	if affected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}

	// Re-read so the caller gets the authoritative row, and the audit
	// entry carries the post-update identity fields.
	updated, err := ctrl.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
		}
		log.Printf("Error updating attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while updating attendance")
	}

	ctrl.recorder.Record(activityservice.Event{
		UserName:     actorName(req.UpdatedBy),
		ActionType:   constants.ActionUpdate,
		ResourceType: constants.ResourceAttendance,
		ResourceID:   updated.AttendanceID.String(),
		ResourceName: fmt.Sprintf("%s - %s", updated.AttendanceEmployeeName, updated.AttendanceDate),
		Description: fmt.Sprintf("Attendance record updated for %s (%s) on %s",
			updated.AttendanceEmployeeName, updated.AttendanceEmployeeID, updated.AttendanceDate),
		IPAddress: c.IP(),
		Metadata: map[string]interface{}{
			"employeeId": updated.AttendanceEmployeeID,
			"date":       updated.AttendanceDate,
		},
	})

	return helper.Success(c, "Attendance record updated successfully", dto.NewAttendanceResponse(*updated))
}

/* ===================== DELETE BY ID ===================== */
// DELETE /attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}

	// Read first: 404 detection plus identity fields for the audit entry.
	row, err := ctrl.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
		}
		log.Printf("Error deleting attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while deleting attendance")
	}

	if err := ctrl.repo.Delete(c.UserContext(), id); err != nil {
		log.Printf("Error deleting attendance: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while deleting attendance")
	}

	ctrl.recorder.Record(activityservice.Event{
		UserName:     actorName(deletedBy(c)),
		ActionType:   constants.ActionDelete,
		ResourceType: constants.ResourceAttendance,
		ResourceID:   row.AttendanceID.String(),
		ResourceName: fmt.Sprintf("%s - %s", row.AttendanceEmployeeName, row.AttendanceDate),
		Description: fmt.Sprintf("Attendance record deleted for %s (%s) on %s",
			row.AttendanceEmployeeName, row.AttendanceEmployeeID, row.AttendanceDate),
		IPAddress: c.IP(),
		Metadata: map[string]interface{}{
			"employeeId": row.AttendanceEmployeeID,
			"date":       row.AttendanceDate,
		},
	})

	return helper.SuccessWithCode(c, fiber.StatusOK, "Attendance record deleted successfully", nil)
}

/* ===================== VERIFY FACE ===================== */
// POST /attendance/verify-face
func (ctrl *AttendanceController) VerifyFace(c *fiber.Ctx) error {
	var req dto.VerifyFaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	registered := ""
	if req.RegisteredFace != nil {
		registered = *req.RegisteredFace
	}
	if registered == "" {
		// Fall back to the stored reference; its absence is a rejectable
		// precondition and the comparator must not be consulted.
		emp, err := ctrl.employees.FindByEmployeeID(c.UserContext(), req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Employee not found")
			}
			log.Printf("Error verifying face: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while verifying face")
		}
		if emp.EmployeeRegisteredFaceFile == nil || *emp.EmployeeRegisteredFaceFile == "" {
			return helper.Error(c, fiber.StatusBadRequest,
				"Employee does not have a registered face. Please register face first.")
		}
		registered = *emp.EmployeeRegisteredFaceFile
	}

	result, err := ctrl.comparator.Compare(c.UserContext(), registered, req.CapturedFace)
	if err != nil {
		log.Printf("Error verifying face: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while verifying face")
	}

	message := "Face verification failed - faces do not match"
	if result.Similar {
		message = "Face verification successful"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"similar":    result.Similar,
		"similarity": result.Similarity,
		"message":    message,
	})
}

/* ===================== helpers ===================== */

func actorName(supplied *string) string {
	if supplied != nil && *supplied != "" {
		return *supplied
	}
	return "System"
}

func deletedBy(c *fiber.Ctx) *string {
	var body struct {
		DeletedBy *string `json:"deletedBy"`
	}
	if err := c.BodyParser(&body); err != nil {
		return nil
	}
	return body.DeletedBy
}

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the json field names the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
