package constants

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusLeave   = "leave"
)

// ==========================
// ✅ Grouped status slice
// ==========================
var AttendanceStatuses = []string{
	StatusPresent,
	StatusAbsent,
	StatusLate,
	StatusHalfDay,
	StatusLeave,
}

func IsValidAttendanceStatus(s string) bool {
	for _, v := range AttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Activity log action types
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Resource types for the activity log
const (
	ResourceAttendance = "Attendance"
	ResourceEmployee   = "Employee"
)

// Employee statuses
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)
