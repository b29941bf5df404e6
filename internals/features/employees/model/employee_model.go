package model

import (
	"time"
)

// EmployeeModel is read-mostly in this service: employee lifecycle is
// owned by the employee-management module. This service reads it for
// face verification, document generation, and the directory endpoints.
type EmployeeModel struct {
	// Business id ("25-GPC-0001"), primary key.
	EmployeeID string `gorm:"size:50;primaryKey;column:employee_id" json:"employee_id"`

	EmployeeFirstName  string  `gorm:"size:100;not null;column:employee_first_name" json:"employee_first_name"`
	EmployeeMiddleName *string `gorm:"size:100;column:employee_middle_name"         json:"employee_middle_name,omitempty"`
	EmployeeLastName   string  `gorm:"size:100;not null;column:employee_last_name"  json:"employee_last_name"`
	EmployeeSuffixName *string `gorm:"size:20;column:employee_suffix_name"          json:"employee_suffix_name,omitempty"`
	EmployeeFullName   string  `gorm:"size:200;not null;column:employee_full_name"  json:"employee_full_name"`

	EmployeeDateOfBirth *string `gorm:"size:10;column:employee_date_of_birth" json:"employee_date_of_birth,omitempty"`
	EmployeeGender      *string `gorm:"size:20;column:employee_gender"        json:"employee_gender,omitempty"`
	EmployeeCivilStatus *string `gorm:"size:30;column:employee_civil_status"  json:"employee_civil_status,omitempty"`

	EmployeeAddress          *string `gorm:"column:employee_address"                json:"employee_address,omitempty"`
	EmployeeEmail            *string `gorm:"size:150;column:employee_email"         json:"employee_email,omitempty"`
	EmployeePhone            *string `gorm:"size:30;column:employee_phone"          json:"employee_phone,omitempty"`
	EmployeeEmergencyContact *string `gorm:"column:employee_emergency_contact"      json:"employee_emergency_contact,omitempty"`

	EmployeeDepartment     *string `gorm:"size:100;column:employee_department"      json:"employee_department,omitempty"`
	EmployeePosition       *string `gorm:"size:100;column:employee_position"        json:"employee_position,omitempty"`
	EmployeeEmploymentType *string `gorm:"size:50;column:employee_employment_type"  json:"employee_employment_type,omitempty"`
	EmployeeRole           *string `gorm:"size:50;column:employee_role"             json:"employee_role,omitempty"`

	EmployeeDateHired     *string `gorm:"size:10;column:employee_date_hired"      json:"employee_date_hired,omitempty"`
	EmployeeDateOfLeaving *string `gorm:"size:10;column:employee_date_of_leaving" json:"employee_date_of_leaving,omitempty"`

	// active | inactive
	EmployeeStatus         string  `gorm:"size:10;not null;default:active;column:employee_status" json:"employee_status"`
	EmployeeArchivedReason *string `gorm:"column:employee_archived_reason"                        json:"employee_archived_reason,omitempty"`
	EmployeeArchivedDate   *string `gorm:"size:10;column:employee_archived_date"                  json:"employee_archived_date,omitempty"`

	EmployeeSSSNumber     *string `gorm:"size:30;column:employee_sss_number"     json:"employee_sss_number,omitempty"`
	EmployeeTINNumber     *string `gorm:"size:30;column:employee_tin_number"     json:"employee_tin_number,omitempty"`
	EmployeePagibigNumber *string `gorm:"size:30;column:employee_pagibig_number" json:"employee_pagibig_number,omitempty"`

	EmployeeEducationalBackground *string `gorm:"column:employee_educational_background" json:"employee_educational_background,omitempty"`

	// Document-on-file references (opaque URLs / storage keys)
	EmployeePDSFile            *string `gorm:"column:employee_pds_file"             json:"employee_pds_file,omitempty"`
	EmployeeServiceRecordFile  *string `gorm:"column:employee_service_record_file"  json:"employee_service_record_file,omitempty"`
	EmployeeSignatureFile      *string `gorm:"column:employee_signature_file"       json:"employee_signature_file,omitempty"`
	EmployeeRegisteredFaceFile *string `gorm:"column:employee_registered_face_file" json:"employee_registered_face_file,omitempty"`

	EmployeeCreatedAt time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
}

func (EmployeeModel) TableName() string { return "employees" }
