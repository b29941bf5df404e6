// file: internals/features/documents/service/templates_html.go
package service

const baseStyles = `
  @page { size: letter; margin: 0.75in; }
  * { box-sizing: border-box; }
  body {
    font-family: 'Arial', 'Helvetica Neue', sans-serif;
    line-height: 1.5;
    color: #1a1a1a;
    font-size: 11px;
    margin: 0;
    padding: 0;
  }
  h1, h2, h3 { margin: 0; }
  .header {
    text-align: center;
    margin-bottom: 20px;
    border-bottom: 2px solid #1e40af;
    padding-bottom: 15px;
  }
  .header h1 {
    font-size: 18px;
    font-weight: bold;
    color: #1e40af;
    letter-spacing: 1px;
    margin-bottom: 4px;
  }
  .header p {
    margin: 2px 0;
    font-size: 10px;
    color: #4b5563;
  }
  .section {
    margin-top: 16px;
    page-break-inside: avoid;
  }
  .section-title {
    background: #1e40af;
    color: white;
    padding: 6px 12px;
    font-size: 11px;
    font-weight: bold;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    margin-bottom: 0;
  }
  table {
    width: 100%;
    border-collapse: collapse;
    font-size: 10px;
  }
  th, td {
    border: 1px solid #d1d5db;
    padding: 6px 8px;
    text-align: left;
    vertical-align: top;
  }
  th {
    background: #f3f4f6;
    font-weight: 600;
    color: #374151;
    width: 30%;
  }
  td {
    background: white;
  }
  .signature-section {
    margin-top: 40px;
    display: flex;
    justify-content: space-between;
    page-break-inside: avoid;
  }
  .signature-box {
    width: 45%;
    text-align: center;
  }
  .signature-line {
    border-top: 1px solid #1a1a1a;
    margin-top: 50px;
    padding-top: 4px;
    font-size: 10px;
    font-weight: 600;
  }
  .signature-title {
    font-size: 9px;
    color: #6b7280;
  }
  .status-badge {
    display: inline-block;
    padding: 2px 8px;
    border-radius: 10px;
    font-size: 9px;
    font-weight: 600;
    text-transform: uppercase;
  }
  .status-active { background: #dcfce7; color: #166534; }
  .status-inactive { background: #fee2e2; color: #991b1b; }
  .status-complete { background: #dbeafe; color: #1e40af; }
  .status-pending { background: #fef3c7; color: #92400e; }
  .note {
    font-size: 9px;
    color: #6b7280;
    font-style: italic;
    margin-top: 8px;
  }
  @media print {
    body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  }
`

const coeHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Certificate of Employment - {{.FullName}}</title>
    <style>` + baseStyles + `
      .coe-content {
        text-align: justify;
        line-height: 2;
        margin-top: 30px;
        font-size: 12px;
      }
      .coe-content p {
        margin: 0 0 20px;
        text-indent: 40px;
      }
      .document-title {
        text-align: center;
        margin: 30px 0;
        font-size: 16px;
        font-weight: bold;
        text-decoration: underline;
        letter-spacing: 2px;
      }
      .to-whom {
        margin: 30px 0;
        font-weight: bold;
      }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>{{.SchoolName}}</h1>
      <p>{{.SchoolAddress}}</p>
      <p>{{.SchoolContact}}</p>
    </div>

    <div class="document-title">CERTIFICATE OF EMPLOYMENT</div>

    <div class="to-whom">TO WHOM IT MAY CONCERN:</div>

    <div class="coe-content">
      <p>
        This is to certify that <strong>{{.FullNameUpper}}</strong>,
        with Employee ID <strong>{{.EmployeeID}}</strong>,
        {{if .Inactive}}was formerly{{else}}is presently{{end}} employed at
        <strong>The Great Plebeian College</strong>{{if .Position}} as <strong>{{.Position}}</strong>{{end}}{{if .Department}} under the <strong>{{.Department}}</strong> Department{{end}}.
      </p>
      <p>
        {{if .HasDateHired}}{{if .Inactive}}He/She served{{else}}He/She has been serving{{end}} the institution since <strong>{{.DateHired}}</strong>{{if .HasLeaving}} until <strong>{{.DateOfLeaving}}</strong>{{end}}.{{else}}He/She is in good standing with the institution.{{end}}
      </p>
      <p>
        This certificate is issued upon the request of the above-named individual for whatever legal purpose it may serve.
      </p>
      <p>
        Issued this <strong>{{.GeneratedOn}}</strong> at San Vicente, Palawan.
      </p>
    </div>

    <div class="signature-section">
      <div class="signature-box">
        <div class="signature-line">
          <strong>HR MANAGER</strong>
          <div class="signature-title">Human Resources Department</div>
        </div>
      </div>
      <div class="signature-box">
        <div class="signature-line">
          <strong>SCHOOL ADMINISTRATOR</strong>
          <div class="signature-title">Office of the Administrator</div>
        </div>
      </div>
    </div>
  </body>
</html>
`

const pdsHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Personal Data Sheet - {{.FullName}}</title>
    <style>` + baseStyles + `
      .instructions {
        background: #fef3c7;
        border: 1px solid #f59e0b;
        padding: 8px 12px;
        font-size: 9px;
        margin-bottom: 15px;
      }
      .cs-form-no {
        text-align: right;
        font-size: 9px;
        color: #6b7280;
        margin-bottom: 5px;
      }
      .id-photo {
        width: 100px;
        height: 100px;
        border: 1px solid #d1d5db;
        margin: 0 auto;
        display: flex;
        align-items: center;
        justify-content: center;
        font-size: 8px;
        color: #9ca3af;
      }
    </style>
  </head>
  <body>
    <div class="cs-form-no">CS Form No. 212<br/>Revised 2017</div>

    <div class="header">
      <h1>PERSONAL DATA SHEET</h1>
      <p style="font-size: 9px; margin-top: 5px;">WARNING: Any misrepresentation made in the Personal Data Sheet and the Work Experience Sheet shall cause the filing of administrative/criminal case/s against the person concerned.</p>
    </div>

    <div class="instructions">
      <strong>INSTRUCTIONS:</strong> Print all entries clearly using black ink. Do not abbreviate. Mark appropriate boxes with an "X".
    </div>

    <div class="section">
      <div class="section-title">I. PERSONAL INFORMATION</div>
      <table>
        <tr>
          <th style="width: 25%;">Full Name</th>
          <td colspan="3"><strong>{{.FullName}}</strong></td>
        </tr>
        <tr>
          <th>Surname</th>
          <td>{{.LastName}}</td>
          <th style="width: 15%;">First Name</th>
          <td>{{.FirstName}}</td>
        </tr>
        <tr>
          <th>Middle Name</th>
          <td>{{.MiddleName}}</td>
          <th>Name Extension</th>
          <td>{{.SuffixName}}</td>
        </tr>
        <tr>
          <th>Date of Birth</th>
          <td>{{.DateOfBirth}}</td>
          <th>Gender</th>
          <td>{{.Gender}}</td>
        </tr>
        <tr>
          <th>Civil Status</th>
          <td>{{.CivilStatus}}</td>
          <th>Citizenship</th>
          <td>Filipino</td>
        </tr>
        <tr>
          <th>Residential Address</th>
          <td colspan="3">{{.Address}}</td>
        </tr>
        <tr>
          <th>Email Address</th>
          <td>{{.Email}}</td>
          <th>Mobile No.</th>
          <td>{{.Phone}}</td>
        </tr>
        <tr>
          <th>Emergency Contact</th>
          <td colspan="3">{{.EmergencyContact}}</td>
        </tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">II. EMPLOYMENT INFORMATION</div>
      <table>
        <tr>
          <th>Employee ID</th>
          <td><strong>{{.EmployeeID}}</strong></td>
          <th style="width: 15%;">Status</th>
          <td>{{.StatusUpper}}</td>
        </tr>
        <tr>
          <th>Department</th>
          <td>{{.DepartmentNA}}</td>
          <th>Position</th>
          <td>{{.PositionNA}}</td>
        </tr>
        <tr>
          <th>Employment Type</th>
          <td>{{.EmploymentType}}</td>
          <th>Role</th>
          <td>{{.Role}}</td>
        </tr>
        <tr>
          <th>Date Hired</th>
          <td>{{.DateHired}}</td>
          <th>Date of Leaving</th>
          <td>{{if .HasLeaving}}{{.DateOfLeaving}}{{else}}N/A{{end}}</td>
        </tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">III. GOVERNMENT ID NUMBERS</div>
      <table>
        <tr>
          <th>SSS Number</th>
          <td>{{.SSSNumber}}</td>
          <th style="width: 15%;">TIN</th>
          <td>{{.TINNumber}}</td>
        </tr>
        <tr>
          <th>Pag-IBIG MID No.</th>
          <td>{{.PagibigNumber}}</td>
          <th>PhilHealth No.</th>
          <td>N/A</td>
        </tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">IV. EDUCATIONAL BACKGROUND</div>
      <table>
        <tr>
          <th>Educational Attainment</th>
          <td colspan="3">{{.EducationalBackground}}</td>
        </tr>
      </table>
    </div>

    <div style="margin-top: 30px; font-size: 10px;">
      <p>I declare under oath that I have personally accomplished this Personal Data Sheet which is a true, correct, and complete statement pursuant to the provisions of pertinent laws, rules and regulations of the Republic of the Philippines.</p>
    </div>

    <div class="signature-section">
      <div class="signature-box">
        <div class="signature-line">
          <strong>Signature</strong>
          <div class="signature-title">Date: {{.GeneratedOn}}</div>
        </div>
      </div>
      <div class="signature-box">
        <div class="id-photo">
          ID Picture<br/>(Passport Size)
        </div>
      </div>
    </div>
  </body>
</html>
`

const serviceRecordHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Service Record - {{.FullName}}</title>
    <style>` + baseStyles + `
      .sr-info {
        display: grid;
        grid-template-columns: 1fr 1fr;
        gap: 10px;
        margin-bottom: 20px;
        font-size: 11px;
      }
      .sr-info-item { display: flex; }
      .sr-info-label {
        font-weight: 600;
        min-width: 120px;
        color: #4b5563;
      }
      .sr-info-value { color: #1a1a1a; }
      .record-table th {
        background: #1e40af;
        color: white;
        text-align: center;
        font-size: 9px;
      }
      .record-table td {
        text-align: center;
        font-size: 10px;
      }
      .certification-text {
        margin-top: 30px;
        font-size: 10px;
        text-align: justify;
        line-height: 1.8;
      }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>{{.SchoolName}}</h1>
      <p>{{.SchoolAddress}}</p>
    </div>

    <div style="text-align: center; margin: 25px 0;">
      <h2 style="font-size: 16px; text-decoration: underline; letter-spacing: 2px;">SERVICE RECORD</h2>
    </div>

    <div class="sr-info">
      <div class="sr-info-item">
        <span class="sr-info-label">Employee Name:</span>
        <span class="sr-info-value"><strong>{{.FullName}}</strong></span>
      </div>
      <div class="sr-info-item">
        <span class="sr-info-label">Employee ID:</span>
        <span class="sr-info-value"><strong>{{.EmployeeID}}</strong></span>
      </div>
      <div class="sr-info-item">
        <span class="sr-info-label">Date of Birth:</span>
        <span class="sr-info-value">{{.DateOfBirth}}</span>
      </div>
      <div class="sr-info-item">
        <span class="sr-info-label">Place of Birth:</span>
        <span class="sr-info-value">N/A</span>
      </div>
    </div>

    <div class="section">
      <table class="record-table">
        <thead>
          <tr>
            <th rowspan="2" style="width: 25%;">SERVICE<br/>(Inclusive Dates)</th>
            <th colspan="2">RECORD OF APPOINTMENT</th>
            <th rowspan="2" style="width: 12%;">SALARY</th>
            <th rowspan="2" style="width: 15%;">STATION/<br/>PLACE</th>
            <th rowspan="2" style="width: 10%;">BRANCH</th>
            <th rowspan="2" style="width: 12%;">L/A/W/P</th>
          </tr>
          <tr>
            <th style="width: 18%;">Designation</th>
            <th style="width: 10%;">Status</th>
          </tr>
        </thead>
        <tbody>
          <tr>
            <td>{{.ServicePeriod}}</td>
            <td>{{.PositionNA}}</td>
            <td>{{if eq .EmploymentType "N/A"}}Regular{{else}}{{.EmploymentType}}{{end}}</td>
            <td>-</td>
            <td>Main Campus</td>
            <td>{{.DepartmentNA}}</td>
            <td>-</td>
          </tr>
          <tr><td colspan="7" style="height: 30px;"></td></tr>
          <tr><td colspan="7" style="height: 30px;"></td></tr>
          <tr><td colspan="7" style="height: 30px;"></td></tr>
        </tbody>
      </table>
    </div>

    <div class="certification-text">
      <p>
        <strong>CERTIFICATION:</strong> This is to certify that the above service record is a true and correct account of the services rendered by
        <strong>{{.FullName}}</strong> as shown by the records on file in this office.
      </p>
    </div>

    <div class="signature-section" style="margin-top: 50px;">
      <div class="signature-box">
        <div class="signature-line">
          <strong>PREPARED BY</strong>
          <div class="signature-title">HR Staff</div>
        </div>
      </div>
      <div class="signature-box">
        <div class="signature-line">
          <strong>CERTIFIED CORRECT</strong>
          <div class="signature-title">HR Manager</div>
        </div>
      </div>
    </div>

    <p class="note" style="margin-top: 30px; text-align: center;">
      Generated on {{.GeneratedOn}} | Document ID: SR-{{.EmployeeID}}-{{.DocumentStamp}}
    </p>
  </body>
</html>
`

const file201HTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>201 File - {{.FullName}}</title>
    <style>` + baseStyles + `
      .summary-grid {
        display: grid;
        grid-template-columns: 1fr 1fr;
        gap: 15px;
        margin-bottom: 20px;
      }
      .summary-card {
        border: 1px solid #d1d5db;
        border-radius: 4px;
        overflow: hidden;
      }
      .summary-card-header {
        background: #f3f4f6;
        padding: 8px 12px;
        font-weight: 600;
        font-size: 10px;
        text-transform: uppercase;
        color: #374151;
        border-bottom: 1px solid #d1d5db;
      }
      .summary-card-content {
        padding: 12px;
        font-size: 11px;
      }
      .summary-card-content p { margin: 4px 0; }
      .checklist-item {
        display: flex;
        align-items: center;
        padding: 8px 0;
        border-bottom: 1px solid #f3f4f6;
      }
      .checklist-item:last-child { border-bottom: none; }
      .checklist-icon {
        width: 20px;
        height: 20px;
        border-radius: 50%;
        display: flex;
        align-items: center;
        justify-content: center;
        margin-right: 10px;
        font-size: 10px;
      }
      .checklist-icon.complete { background: #dcfce7; color: #166534; }
      .checklist-icon.pending { background: #fef3c7; color: #92400e; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>{{.SchoolName}}</h1>
      <p>Human Resources Department</p>
    </div>

    <div style="text-align: center; margin: 20px 0;">
      <h2 style="font-size: 16px; letter-spacing: 1px;">201 FILE SUMMARY</h2>
      <p style="font-size: 10px; color: #6b7280;">Employee Records Summary Document</p>
    </div>

    <div class="summary-grid">
      <div class="summary-card">
        <div class="summary-card-header">Employee Information</div>
        <div class="summary-card-content">
          <p><strong>Name:</strong> {{.FullName}}</p>
          <p><strong>Employee ID:</strong> {{.EmployeeID}}</p>
          <p><strong>Position:</strong> {{.PositionNA}}</p>
          <p><strong>Department:</strong> {{.DepartmentNA}}</p>
        </div>
      </div>
      <div class="summary-card">
        <div class="summary-card-header">Employment Details</div>
        <div class="summary-card-content">
          <p><strong>Date Hired:</strong> {{.DateHired}}</p>
          <p><strong>Employment Type:</strong> {{.EmploymentType}}</p>
          <p><strong>Status:</strong> <span class="status-badge {{.StatusBadge}}">{{.StatusUpper}}</span></p>
          {{if .HasLeaving}}<p><strong>Date of Leaving:</strong> {{.DateOfLeaving}}</p>{{end}}
        </div>
      </div>
    </div>

    <div class="section">
      <div class="section-title">Contact Information</div>
      <table>
        <tr>
          <th style="width: 25%;">Email Address</th>
          <td>{{.Email}}</td>
          <th style="width: 20%;">Phone Number</th>
          <td>{{.Phone}}</td>
        </tr>
        <tr>
          <th>Address</th>
          <td colspan="3">{{.Address}}</td>
        </tr>
        <tr>
          <th>Emergency Contact</th>
          <td colspan="3">{{.EmergencyContact}}</td>
        </tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">Government IDs</div>
      <table>
        <tr>
          <th style="width: 25%;">SSS Number</th>
          <td>{{.SSSNumber}}</td>
          <th style="width: 20%;">TIN</th>
          <td>{{.TINNumber}}</td>
        </tr>
        <tr>
          <th>Pag-IBIG Number</th>
          <td colspan="3">{{.PagibigNumber}}</td>
        </tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">Document Compliance Checklist</div>
      <div style="padding: 12px; border: 1px solid #d1d5db; border-top: none;">
        {{range .Checklist}}
        <div class="checklist-item">
          <div class="checklist-icon {{if .OnFile}}complete{{else}}pending{{end}}">{{if .OnFile}}&#10003;{{else}}&#9675;{{end}}</div>
          <div style="flex: 1;">{{.Label}}</div>
          <span class="status-badge {{if .OnFile}}status-complete{{else}}status-pending{{end}}">{{if .OnFile}}{{.DoneLabel}}{{else}}{{.PendingLabel}}{{end}}</span>
        </div>
        {{end}}
      </div>
    </div>

    {{if .HasArchivedReason}}
    <div class="section">
      <div class="section-title" style="background: #991b1b;">Separation Information</div>
      <table>
        <tr>
          <th style="width: 25%;">Date of Leaving</th>
          <td>{{.DateOfLeaving}}</td>
        </tr>
        <tr>
          <th>Reason for Separation</th>
          <td>{{.ArchivedReason}}</td>
        </tr>
        <tr>
          <th>Archived Date</th>
          <td>{{.ArchivedDate}}</td>
        </tr>
      </table>
    </div>
    {{end}}

    <div class="signature-section" style="margin-top: 40px;">
      <div class="signature-box">
        <div class="signature-line">
          <strong>PREPARED BY</strong>
          <div class="signature-title">HR Staff</div>
        </div>
      </div>
      <div class="signature-box">
        <div class="signature-line">
          <strong>NOTED BY</strong>
          <div class="signature-title">HR Manager</div>
        </div>
      </div>
    </div>

    <p class="note" style="margin-top: 25px; text-align: center;">
      Generated on {{.GeneratedOn}} | Document ID: 201-{{.EmployeeID}}-{{.DocumentStamp}}
    </p>
  </body>
</html>
`
