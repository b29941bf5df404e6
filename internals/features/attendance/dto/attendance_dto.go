// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	m "hrms_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). Status defaults to "present" when omitted.
type CreateAttendanceRequest struct {
	EmployeeID   string `json:"employeeId"   validate:"required"`
	EmployeeName string `json:"employeeName" validate:"required"`
	Date         string `json:"date"         validate:"required,datetime=2006-01-02"`

	CheckIn  *string `json:"checkIn"  validate:"omitempty,datetime=15:04"`
	CheckOut *string `json:"checkOut" validate:"omitempty,datetime=15:04"`

	Status string  `json:"status" validate:"omitempty,oneof=present absent late half-day leave"`
	Notes  *string `json:"notes"  validate:"omitempty"`

	CheckInImage  *string `json:"checkInImage"  validate:"omitempty"`
	CheckOutImage *string `json:"checkOutImage" validate:"omitempty"`

	// Actor for the audit trail; defaults to "System".
	CreatedBy *string `json:"createdBy" validate:"omitempty,max=150"`
}

// Update (partial JSON). Only supplied fields reach the UPDATE statement;
// an empty body is rejected as a no-op.
type UpdateAttendanceRequest struct {
	EmployeeName *string `json:"employeeName" validate:"omitempty,min=1"`
	CheckIn      *string `json:"checkIn"      validate:"omitempty,datetime=15:04"`
	CheckOut     *string `json:"checkOut"     validate:"omitempty,datetime=15:04"`
	Status       *string `json:"status"       validate:"omitempty,oneof=present absent late half-day leave"`
	Notes        *string `json:"notes"        validate:"omitempty"`

	CheckInImage  *string `json:"checkInImage"  validate:"omitempty"`
	CheckOutImage *string `json:"checkOutImage" validate:"omitempty"`

	UpdatedBy *string `json:"updatedBy" validate:"omitempty,max=150"`
}

// Fields returns the supplied columns as an update map.
func (r UpdateAttendanceRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.EmployeeName != nil {
		fields["attendance_employee_name"] = *r.EmployeeName
	}
	if r.CheckIn != nil {
		fields["attendance_check_in"] = nilIfEmpty(r.CheckIn)
	}
	if r.CheckOut != nil {
		fields["attendance_check_out"] = nilIfEmpty(r.CheckOut)
	}
	if r.Status != nil {
		fields["attendance_status"] = *r.Status
	}
	if r.Notes != nil {
		fields["attendance_notes"] = nilIfEmpty(r.Notes)
	}
	if r.CheckInImage != nil {
		fields["attendance_check_in_image"] = nilIfEmpty(r.CheckInImage)
	}
	if r.CheckOutImage != nil {
		fields["attendance_check_out_image"] = nilIfEmpty(r.CheckOutImage)
	}
	return fields
}

// Verify-face (JSON). registeredFace falls back to the employee's stored
// reference when omitted.
type VerifyFaceRequest struct {
	EmployeeID     string  `json:"employeeId"   validate:"required"`
	RegisteredFace *string `json:"registeredFace" validate:"omitempty"`
	CapturedFace   string  `json:"capturedFace" validate:"required"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"checkIn,omitempty"`
	CheckOut     *string `json:"checkOut,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	CheckInImage  *string `json:"checkInImage,omitempty"`
	CheckOutImage *string `json:"checkOutImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateAttendanceRequest) ToModel() m.AttendanceModel {
	status := r.Status
	if status == "" {
		status = "present"
	}
	return m.AttendanceModel{
		AttendanceEmployeeID:    r.EmployeeID,
		AttendanceEmployeeName:  r.EmployeeName,
		AttendanceDate:          r.Date,
		AttendanceCheckIn:       nilIfEmpty(r.CheckIn),
		AttendanceCheckOut:      nilIfEmpty(r.CheckOut),
		AttendanceStatus:        status,
		AttendanceNotes:         nilIfEmpty(r.Notes),
		AttendanceCheckInImage:  nilIfEmpty(r.CheckInImage),
		AttendanceCheckOutImage: nilIfEmpty(r.CheckOutImage),
	}
}

func NewAttendanceResponse(mdl m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:            mdl.AttendanceID.String(),
		EmployeeID:    mdl.AttendanceEmployeeID,
		EmployeeName:  mdl.AttendanceEmployeeName,
		Date:          mdl.AttendanceDate,
		CheckIn:       mdl.AttendanceCheckIn,
		CheckOut:      mdl.AttendanceCheckOut,
		Status:        mdl.AttendanceStatus,
		Notes:         mdl.AttendanceNotes,
		CheckInImage:  mdl.AttendanceCheckInImage,
		CheckOutImage: mdl.AttendanceCheckOutImage,
		CreatedAt:     mdl.AttendanceCreatedAt,
		UpdatedAt:     mdl.AttendanceUpdatedAt,
	}
}

func NewAttendanceResponses(models []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewAttendanceResponse(mdl))
	}
	return out
}

// nilIfEmpty keeps the upsert's COALESCE semantics honest: a blank string
// from the client counts as "absent", never as an overwrite.
func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
