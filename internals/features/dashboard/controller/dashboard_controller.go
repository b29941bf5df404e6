// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"bytes"
	"html/template"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/attendance/model"
	"hrms_backend/internals/features/attendance/repository"
	"hrms_backend/internals/features/dashboard/service"
	authmw "hrms_backend/internals/middlewares/auth"
)

type DashboardController struct {
	repo *repository.AttendanceRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{repo: repository.NewAttendanceRepository(db)}
}

type dashboardRow struct {
	Date       string
	CheckIn    string
	CheckOut   string
	Status     string
	StatusText string
	Notes      string
}

type dashboardData struct {
	EmployeeName    string
	UsingSampleData bool
	Rows            []dashboardRow
}

/* ===================== ATTENDANCE HISTORY ===================== */
// GET /dashboard/attendance — read-only table of the signed-in
// employee's records; falls back to sample data whenever live data is
// unavailable (no credentials, fetch failure, empty result).
func (ctrl *DashboardController) AttendanceHistory(c *fiber.Ctx) error {
	employeeID := authmw.EmployeeIDFromCtx(c)
	fullName := authmw.FullNameFromCtx(c)

	var (
		records     []model.AttendanceModel
		usingSample bool
	)

	if employeeID == "" {
		records = service.SampleAttendance(employeeID, fullName)
		usingSample = true
	} else {
		rows, err := ctrl.repo.List(c.UserContext(), repository.ListFilter{EmployeeID: employeeID})
		if err != nil {
			log.Printf("Error fetching dashboard attendance: %v", err)
		}
		if err != nil || len(rows) == 0 {
			records = service.SampleAttendance(employeeID, fullName)
			usingSample = true
		} else {
			records = rows
		}
	}

	// repo already orders date desc; fixtures are built newest-first,
	// but keep the view's own sort so the table never regresses
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AttendanceDate > records[j].AttendanceDate
	})

	data := dashboardData{
		EmployeeName:    fullName,
		UsingSampleData: usingSample,
		Rows:            make([]dashboardRow, 0, len(records)),
	}
	for _, r := range records {
		data.Rows = append(data.Rows, dashboardRow{
			Date:       formatDashboardDate(r.AttendanceDate),
			CheckIn:    timeOrNA(r.AttendanceCheckIn),
			CheckOut:   timeOrNA(r.AttendanceCheckOut),
			Status:     r.AttendanceStatus,
			StatusText: statusText(r.AttendanceStatus),
			Notes:      notesOrDash(r.AttendanceNotes),
		})
	}

	var buf bytes.Buffer
	if err := dashboardTpl.Execute(&buf, data); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Unexpected error while rendering dashboard")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(buf.String())
}

func formatDashboardDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func timeOrNA(t *string) string {
	if t == nil || *t == "" {
		return "N/A"
	}
	return *t
}

func notesOrDash(n *string) string {
	if n == nil || *n == "" {
		return "-"
	}
	return *n
}

func statusText(status string) string {
	switch status {
	case "half-day":
		return "Half day"
	case "":
		return ""
	default:
		return strings.ToUpper(status[:1]) + status[1:]
	}
}

var dashboardTpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Attendance History</title>
    <style>
      body { font-family: 'Arial', sans-serif; margin: 24px; color: #1a1a1a; background: #f8fafc; }
      h1 { font-size: 24px; margin-bottom: 4px; }
      .subtitle { color: #6b7280; margin-top: 0; }
      .sample-notice {
        background: #eff6ff; border: 1px solid #bfdbfe; color: #1e40af;
        padding: 10px 14px; border-radius: 6px; margin: 16px 0; font-size: 13px;
      }
      table { width: 100%; border-collapse: collapse; background: white; font-size: 14px; }
      thead { background: #1e40af; color: white; }
      th, td { padding: 10px 14px; text-align: left; }
      tbody tr:nth-child(odd) { background: #eef3ff; }
      .badge {
        display: inline-block; padding: 2px 12px; border-radius: 999px;
        font-size: 12px; font-weight: 600;
      }
      .badge.present { background: #dcfce7; color: #166534; }
      .badge.late { background: #fef3c7; color: #92400e; }
      .badge.absent { background: #fee2e2; color: #991b1b; }
      .badge.half-day, .badge.leave { background: #e5e7eb; color: #374151; }
      .empty { padding: 32px; text-align: center; color: #6b7280; }
    </style>
  </head>
  <body>
    <h1>Attendance History</h1>
    <p class="subtitle">View your attendance records (Read-only)</p>

    {{if .UsingSampleData}}
    <div class="sample-notice">Unable to load attendance data. Showing sample data.</div>
    {{end}}

    {{if not .Rows}}
    <div class="empty">No attendance records found.</div>
    {{else}}
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Check In</th>
          <th>Check Out</th>
          <th>Status</th>
          <th>Notes</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Date}}</td>
          <td>{{.CheckIn}}</td>
          <td>{{.CheckOut}}</td>
          <td><span class="badge {{.Status}}">{{.StatusText}}</span></td>
          <td>{{.Notes}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
  </body>
</html>
`
