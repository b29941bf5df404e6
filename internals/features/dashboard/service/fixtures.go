// file: internals/features/dashboard/service/fixtures.go
package service

import (
	"time"

	"hrms_backend/internals/features/attendance/model"
)

// SampleAttendance is the fixed fallback set shown whenever live data is
// unavailable, so the dashboard is never empty. Ordered newest first.
func SampleAttendance(employeeID, employeeName string) []model.AttendanceModel {
	if employeeID == "" {
		employeeID = "25-GPC-0001"
	}
	if employeeName == "" {
		employeeName = "Sample Employee"
	}

	day := func(offset int) string {
		return time.Now().AddDate(0, 0, -offset).Format("2006-01-02")
	}
	s := func(v string) *string { return &v }

	return []model.AttendanceModel{
		{
			AttendanceEmployeeID:   employeeID,
			AttendanceEmployeeName: employeeName,
			AttendanceDate:         day(0),
			AttendanceCheckIn:      s("08:05"),
			AttendanceCheckOut:     s("17:00"),
			AttendanceStatus:       "present",
			AttendanceNotes:        s("On time"),
		},
		{
			AttendanceEmployeeID:   employeeID,
			AttendanceEmployeeName: employeeName,
			AttendanceDate:         day(1),
			AttendanceCheckIn:      s("08:15"),
			AttendanceCheckOut:     s("17:10"),
			AttendanceStatus:       "late",
			AttendanceNotes:        s("On Leave"),
		},
		{
			AttendanceEmployeeID:   employeeID,
			AttendanceEmployeeName: employeeName,
			AttendanceDate:         day(2),
			AttendanceCheckIn:      s("08:00"),
			AttendanceCheckOut:     s("17:00"),
			AttendanceStatus:       "present",
		},
	}
}
