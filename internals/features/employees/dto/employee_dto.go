package dto

import (
	m "hrms_backend/internals/features/employees/model"
)

type EmployeeResponse struct {
	EmployeeID string  `json:"employeeId"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   string  `json:"lastName"`
	SuffixName *string `json:"suffixName,omitempty"`
	FullName   string  `json:"fullName"`

	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	CivilStatus *string `json:"civilStatus,omitempty"`

	Address          *string `json:"address,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`

	Department     *string `json:"department,omitempty"`
	Position       *string `json:"position,omitempty"`
	EmploymentType *string `json:"employmentType,omitempty"`
	Role           *string `json:"role,omitempty"`

	DateHired     *string `json:"dateHired,omitempty"`
	DateOfLeaving *string `json:"dateOfLeaving,omitempty"`

	Status         string  `json:"status"`
	ArchivedReason *string `json:"archivedReason,omitempty"`
	ArchivedDate   *string `json:"archivedDate,omitempty"`

	SSSNumber     *string `json:"sssNumber,omitempty"`
	TINNumber     *string `json:"tinNumber,omitempty"`
	PagibigNumber *string `json:"pagibigNumber,omitempty"`

	EducationalBackground *string `json:"educationalBackground,omitempty"`

	PDSFile            *string `json:"pdsFile,omitempty"`
	ServiceRecordFile  *string `json:"serviceRecordFile,omitempty"`
	SignatureFile      *string `json:"signatureFile,omitempty"`
	RegisteredFaceFile *string `json:"registeredFaceFile,omitempty"`
}

func NewEmployeeResponse(mdl m.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:            mdl.EmployeeID,
		FirstName:             mdl.EmployeeFirstName,
		MiddleName:            mdl.EmployeeMiddleName,
		LastName:              mdl.EmployeeLastName,
		SuffixName:            mdl.EmployeeSuffixName,
		FullName:              mdl.EmployeeFullName,
		DateOfBirth:           mdl.EmployeeDateOfBirth,
		Gender:                mdl.EmployeeGender,
		CivilStatus:           mdl.EmployeeCivilStatus,
		Address:               mdl.EmployeeAddress,
		Email:                 mdl.EmployeeEmail,
		Phone:                 mdl.EmployeePhone,
		EmergencyContact:      mdl.EmployeeEmergencyContact,
		Department:            mdl.EmployeeDepartment,
		Position:              mdl.EmployeePosition,
		EmploymentType:        mdl.EmployeeEmploymentType,
		Role:                  mdl.EmployeeRole,
		DateHired:             mdl.EmployeeDateHired,
		DateOfLeaving:         mdl.EmployeeDateOfLeaving,
		Status:                mdl.EmployeeStatus,
		ArchivedReason:        mdl.EmployeeArchivedReason,
		ArchivedDate:          mdl.EmployeeArchivedDate,
		SSSNumber:             mdl.EmployeeSSSNumber,
		TINNumber:             mdl.EmployeeTINNumber,
		PagibigNumber:         mdl.EmployeePagibigNumber,
		EducationalBackground: mdl.EmployeeEducationalBackground,
		PDSFile:               mdl.EmployeePDSFile,
		ServiceRecordFile:     mdl.EmployeeServiceRecordFile,
		SignatureFile:         mdl.EmployeeSignatureFile,
		RegisteredFaceFile:    mdl.EmployeeRegisteredFaceFile,
	}
}

func NewEmployeeResponses(models []m.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewEmployeeResponse(mdl))
	}
	return out
}
