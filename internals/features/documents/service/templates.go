// file: internals/features/documents/service/templates.go
//
// Pure document generation: (kind, employee) → self-contained printable
// HTML. Missing optional fields degrade to "N/A" placeholders; no
// completeness validation is performed.
package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"hrms_backend/internals/features/employees/model"
)

const (
	KindCOE           = "coe"
	KindPDS           = "pds"
	KindServiceRecord = "serviceRecord"
	KindFile201       = "file201"
)

const (
	schoolName    = "THE GREAT PLEBEIAN COLLEGE"
	schoolAddress = "General Pedro Corpus, San Vicente, Palawan"
	schoolContact = "Email: info@gpcc.edu.ph | Tel: (048) 123-4567"
)

// Generate renders the document for the given template kind.
// Unknown kinds fall back to the certificate of employment.
func Generate(kind string, emp model.EmployeeModel) (string, error) {
	data := newDocumentData(emp)
	var tpl *template.Template
	switch kind {
	case KindPDS:
		tpl = pdsTpl
	case KindFile201:
		tpl = file201Tpl
	case KindServiceRecord:
		tpl = serviceRecordTpl
	case KindCOE:
		tpl = coeTpl
	default:
		tpl = coeTpl
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s document: %w", kind, err)
	}
	return buf.String(), nil
}

/* =========================================================
 * Template data
 * ========================================================= */

type checklistItem struct {
	Label        string
	OnFile       bool
	DoneLabel    string
	PendingLabel string
}

type documentData struct {
	SchoolName    string
	SchoolAddress string
	SchoolContact string

	FullName      string
	FullNameUpper string
	EmployeeID    string

	LastName   string
	FirstName  string
	MiddleName string
	SuffixName string

	DateOfBirth string
	Gender      string
	CivilStatus string

	Address          string
	Email            string
	Phone            string
	EmergencyContact string

	// raw values drive the conditional phrasing; NA variants fill tables
	Position       string
	Department     string
	PositionNA     string
	DepartmentNA   string
	EmploymentType string
	Role           string

	HasDateHired  bool
	DateHired     string
	HasLeaving    bool
	DateOfLeaving string
	ServicePeriod string

	Inactive    bool
	StatusUpper string
	StatusBadge string

	SSSNumber     string
	TINNumber     string
	PagibigNumber string

	EducationalBackground string

	Checklist []checklistItem

	HasArchivedReason bool
	ArchivedReason    string
	ArchivedDate      string

	GeneratedOn   string
	DocumentStamp string
}

func newDocumentData(emp model.EmployeeModel) documentData {
	now := time.Now()
	statusUpper := "N/A"
	badge := "status-inactive"
	if emp.EmployeeStatus != "" {
		statusUpper = strings.ToUpper(emp.EmployeeStatus)
	}
	if emp.EmployeeStatus == "active" {
		badge = "status-active"
	}

	d := documentData{
		SchoolName:    schoolName,
		SchoolAddress: schoolAddress,
		SchoolContact: schoolContact,

		FullName:      emp.EmployeeFullName,
		FullNameUpper: strings.ToUpper(emp.EmployeeFullName),
		EmployeeID:    emp.EmployeeID,

		LastName:   orNA(&emp.EmployeeLastName),
		FirstName:  orNA(&emp.EmployeeFirstName),
		MiddleName: orNA(emp.EmployeeMiddleName),
		SuffixName: orNA(emp.EmployeeSuffixName),

		DateOfBirth: formatDate(emp.EmployeeDateOfBirth),
		Gender:      orNA(emp.EmployeeGender),
		CivilStatus: orNA(emp.EmployeeCivilStatus),

		Address:          orNA(emp.EmployeeAddress),
		Email:            orNA(emp.EmployeeEmail),
		Phone:            orNA(emp.EmployeePhone),
		EmergencyContact: orNA(emp.EmployeeEmergencyContact),

		Position:       deref(emp.EmployeePosition),
		Department:     deref(emp.EmployeeDepartment),
		PositionNA:     orNA(emp.EmployeePosition),
		DepartmentNA:   orNA(emp.EmployeeDepartment),
		EmploymentType: orNA(emp.EmployeeEmploymentType),
		Role:           orNA(emp.EmployeeRole),

		HasDateHired:  emp.EmployeeDateHired != nil && *emp.EmployeeDateHired != "",
		DateHired:     formatDate(emp.EmployeeDateHired),
		HasLeaving:    emp.EmployeeDateOfLeaving != nil && *emp.EmployeeDateOfLeaving != "",
		DateOfLeaving: formatDate(emp.EmployeeDateOfLeaving),

		Inactive:    emp.EmployeeStatus == "inactive",
		StatusUpper: statusUpper,
		StatusBadge: badge,

		SSSNumber:     orNA(emp.EmployeeSSSNumber),
		TINNumber:     orNA(emp.EmployeeTINNumber),
		PagibigNumber: orNA(emp.EmployeePagibigNumber),

		EducationalBackground: orNA(emp.EmployeeEducationalBackground),

		HasArchivedReason: emp.EmployeeArchivedReason != nil && *emp.EmployeeArchivedReason != "",
		ArchivedReason:    orNA(emp.EmployeeArchivedReason),
		ArchivedDate:      formatDate(emp.EmployeeArchivedDate),

		GeneratedOn:   now.Format("January 2, 2006"),
		DocumentStamp: strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
	}

	leaving := "PRESENT"
	if d.HasLeaving {
		leaving = formatShortDate(emp.EmployeeDateOfLeaving)
	}
	d.ServicePeriod = formatShortDate(emp.EmployeeDateHired) + " - " + leaving

	onFile := func(s *string) bool { return s != nil && *s != "" }
	d.Checklist = []checklistItem{
		{"Personal Data Sheet (PDS)", onFile(emp.EmployeePDSFile), "On File", "Pending"},
		{"Service Record", onFile(emp.EmployeeServiceRecordFile), "On File", "Pending"},
		{"Signature Specimen", onFile(emp.EmployeeSignatureFile), "On File", "Pending"},
		{"Face Registration (Biometric)", onFile(emp.EmployeeRegisteredFaceFile), "Completed", "Pending"},
		{"SSS Registration", onFile(emp.EmployeeSSSNumber), "Submitted", "Pending"},
		{"Pag-IBIG Registration", onFile(emp.EmployeePagibigNumber), "Submitted", "Pending"},
		{"TIN Registration", onFile(emp.EmployeeTINNumber), "Submitted", "Pending"},
	}

	return d
}

/* =========================================================
 * Formatting helpers
 * ========================================================= */

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

// formatDate renders an ISO date as "January 2, 2006";
// unparseable input falls through unchanged.
func formatDate(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return *s
	}
	return t.Format("January 2, 2006")
}

// formatShortDate renders an ISO date as "01/02/2006".
func formatShortDate(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return *s
	}
	return t.Format("01/02/2006")
}

var (
	coeTpl           = template.Must(template.New("coe").Parse(coeHTML))
	pdsTpl           = template.Must(template.New("pds").Parse(pdsHTML))
	serviceRecordTpl = template.Must(template.New("serviceRecord").Parse(serviceRecordHTML))
	file201Tpl       = template.Must(template.New("file201").Parse(file201HTML))
)
