package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms_backend/internals/features/employees/model"
)

func strptr(v string) *string { return &v }

func fullEmployee() model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID:         "25-GPC-0001",
		EmployeeFirstName:  "Jane",
		EmployeeMiddleName: strptr("Santos"),
		EmployeeLastName:   "Doe",
		EmployeeFullName:   "Jane Santos Doe",

		EmployeeDateOfBirth: strptr("1990-05-15"),
		EmployeeGender:      strptr("Female"),
		EmployeeCivilStatus: strptr("Single"),

		EmployeeAddress: strptr("San Vicente, Palawan"),
		EmployeeEmail:   strptr("jane@gpcc.edu.ph"),
		EmployeePhone:   strptr("0917-000-0000"),

		EmployeeDepartment:     strptr("Registrar"),
		EmployeePosition:       strptr("Records Officer"),
		EmployeeEmploymentType: strptr("Regular"),

		EmployeeDateHired: strptr("2020-06-01"),
		EmployeeStatus:    "active",

		EmployeeSSSNumber:     strptr("34-1234567-8"),
		EmployeeTINNumber:     strptr("123-456-789"),
		EmployeePagibigNumber: strptr("1212-3434-5656"),

		EmployeePDSFile: strptr("https://files.example/pds.pdf"),
	}
}

func TestGenerate_COE(t *testing.T) {
	html, err := Generate(KindCOE, fullEmployee())
	require.NoError(t, err)

	assert.Contains(t, html, "CERTIFICATE OF EMPLOYMENT")
	assert.Contains(t, html, "THE GREAT PLEBEIAN COLLEGE")
	assert.Contains(t, html, "JANE SANTOS DOE")
	assert.Contains(t, html, "Records Officer")
	assert.Contains(t, html, "Registrar")
	assert.Contains(t, html, "June 1, 2020")
	assert.Contains(t, html, "is presently")
	assert.NotContains(t, html, "was formerly", "active employee has no separation phrasing")
}

func TestGenerate_PDS(t *testing.T) {
	html, err := Generate(KindPDS, fullEmployee())
	require.NoError(t, err)

	assert.Contains(t, html, "PERSONAL DATA SHEET")
	assert.Contains(t, html, "CS Form No. 212")
	assert.Contains(t, html, "Doe")
	assert.Contains(t, html, "May 15, 1990")
	assert.Contains(t, html, "34-1234567-8")
}

func TestGenerate_ServiceRecord(t *testing.T) {
	html, err := Generate(KindServiceRecord, fullEmployee())
	require.NoError(t, err)

	assert.Contains(t, html, "SERVICE RECORD")
	assert.Contains(t, html, "06/01/2020 - PRESENT")
	assert.Contains(t, html, "Records Officer")
	assert.Contains(t, html, "CERTIFICATION:")
}

func TestGenerate_File201(t *testing.T) {
	emp := fullEmployee()
	html, err := Generate(KindFile201, emp)
	require.NoError(t, err)

	assert.Contains(t, html, "201 FILE")
	// checklist reflects which documents are on file
	assert.Contains(t, html, "Personal Data Sheet (PDS)")
	assert.Contains(t, html, "On File")
	assert.Contains(t, html, "Face Registration (Biometric)")
	assert.Contains(t, html, "Pending")
}

func TestGenerate_File201_SeparationSection(t *testing.T) {
	emp := fullEmployee()
	emp.EmployeeStatus = "inactive"
	emp.EmployeeDateOfLeaving = strptr("2024-03-31")
	emp.EmployeeArchivedReason = strptr("Resigned")
	emp.EmployeeArchivedDate = strptr("2024-04-01")

	html, err := Generate(KindFile201, emp)
	require.NoError(t, err)

	assert.Contains(t, html, "Separation Information")
	assert.Contains(t, html, "Resigned")
	assert.Contains(t, html, "April 1, 2024")
}

func TestGenerate_MissingFieldsDegradeToNA(t *testing.T) {
	emp := model.EmployeeModel{
		EmployeeID:        "25-GPC-0099",
		EmployeeFirstName: "Juan",
		EmployeeLastName:  "dela Cruz",
		EmployeeFullName:  "Juan dela Cruz",
		EmployeeStatus:    "active",
	}

	for _, kind := range []string{KindCOE, KindPDS, KindServiceRecord, KindFile201} {
		html, err := Generate(kind, emp)
		require.NoError(t, err, kind)
		assert.Contains(t, html, "N/A", kind)
		assert.Contains(t, html, "Juan dela Cruz", kind)
	}
}

func TestGenerate_UnknownKindFallsBackToCOE(t *testing.T) {
	html, err := Generate("payslip", fullEmployee())
	require.NoError(t, err)
	assert.Contains(t, html, "CERTIFICATE OF EMPLOYMENT")
}

func TestGenerate_EscapesEmployeeInput(t *testing.T) {
	emp := fullEmployee()
	emp.EmployeeFullName = `Jane <script>alert("x")</script>`

	html, err := Generate(KindCOE, emp)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "N/A", formatDate(nil))
	assert.Equal(t, "N/A", formatDate(strptr("")))
	assert.Equal(t, "January 2, 2024", formatDate(strptr("2024-01-02")))
	assert.Equal(t, "not-a-date", formatDate(strptr("not-a-date")), "unparseable input passes through")

	assert.Equal(t, "01/02/2024", formatShortDate(strptr("2024-01-02")))
	assert.Equal(t, "N/A", formatShortDate(nil))

	assert.Equal(t, "N/A", orNA(nil))
	assert.Equal(t, "x", orNA(strptr("x")))
}
