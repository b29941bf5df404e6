package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(v string) *string { return &v }

func TestCreateRequest_ToModel(t *testing.T) {
	t.Run("status defaults to present", func(t *testing.T) {
		m := CreateAttendanceRequest{
			EmployeeID:   "E1",
			EmployeeName: "Jane",
			Date:         "2024-01-10",
		}.ToModel()
		assert.Equal(t, "present", m.AttendanceStatus)
	})

	t.Run("blank optionals become null, not empty strings", func(t *testing.T) {
		m := CreateAttendanceRequest{
			EmployeeID:   "E1",
			EmployeeName: "Jane",
			Date:         "2024-01-10",
			CheckIn:      strptr(""),
			Notes:        strptr(""),
			Status:       "late",
		}.ToModel()
		assert.Nil(t, m.AttendanceCheckIn, "blank must not overwrite on merge")
		assert.Nil(t, m.AttendanceNotes)
		assert.Equal(t, "late", m.AttendanceStatus)
	})
}

func TestUpdateRequest_Fields(t *testing.T) {
	t.Run("only supplied fields appear", func(t *testing.T) {
		fields := UpdateAttendanceRequest{
			CheckOut: strptr("17:00"),
			Status:   strptr("half-day"),
		}.Fields()
		assert.Equal(t, map[string]interface{}{
			"attendance_check_out": strptr("17:00"),
			"attendance_status":    "half-day",
		}, fields)
	})

	t.Run("empty request yields no fields", func(t *testing.T) {
		assert.Empty(t, UpdateAttendanceRequest{}.Fields())
	})

	t.Run("explicit blank clears the column", func(t *testing.T) {
		fields := UpdateAttendanceRequest{Notes: strptr("")}.Fields()
		var nilStr *string
		assert.Equal(t, map[string]interface{}{"attendance_notes": nilStr}, fields)
	})
}
