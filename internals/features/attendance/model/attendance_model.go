package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	// (employee_id, date) is the natural key: one record per employee per day.
	AttendanceEmployeeID   string `gorm:"size:50;not null;uniqueIndex:uq_attendance_employee_date,priority:1;column:attendance_employee_id" json:"attendance_employee_id"`
	AttendanceEmployeeName string `gorm:"size:150;not null;column:attendance_employee_name" json:"attendance_employee_name"`

	// Stored as ISO strings so lexical order equals chronological order
	// and the API keeps its string-in/string-out contract.
	AttendanceDate     string  `gorm:"size:10;not null;uniqueIndex:uq_attendance_employee_date,priority:2;column:attendance_date" json:"attendance_date"`
	AttendanceCheckIn  *string `gorm:"size:5;column:attendance_check_in"  json:"attendance_check_in,omitempty"`
	AttendanceCheckOut *string `gorm:"size:5;column:attendance_check_out" json:"attendance_check_out,omitempty"`

	AttendanceStatus string  `gorm:"size:10;not null;default:present;column:attendance_status" json:"attendance_status"`
	AttendanceNotes  *string `gorm:"column:attendance_notes" json:"attendance_notes,omitempty"`

	AttendanceCheckInImage  *string `gorm:"column:attendance_check_in_image"  json:"attendance_check_in_image,omitempty"`
	AttendanceCheckOutImage *string `gorm:"column:attendance_check_out_image" json:"attendance_check_out_image,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
