package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/model"
	"hrms_backend/internals/route/details"
)

func strptr(v string) *string { return &v }

func newEmployeeApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.EmployeeModel{}))

	app := fiber.New()
	details.EmployeeRoutes(app, db)
	return app, db
}

func seedEmployees(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []model.EmployeeModel{
		{
			EmployeeID: "25-GPC-0001", EmployeeFirstName: "Jane", EmployeeLastName: "Doe",
			EmployeeFullName: "Jane Doe", EmployeeDepartment: strptr("Registrar"),
			EmployeeStatus: "active",
		},
		{
			EmployeeID: "25-GPC-0002", EmployeeFirstName: "Juan", EmployeeLastName: "dela Cruz",
			EmployeeFullName: "Juan dela Cruz", EmployeeDepartment: strptr("Maintenance"),
			EmployeeStatus: "active",
		},
		{
			EmployeeID: "24-GPC-0044", EmployeeFirstName: "Maria", EmployeeLastName: "Reyes",
			EmployeeFullName: "Maria Reyes", EmployeeDepartment: strptr("Registrar"),
			EmployeeStatus: "inactive", EmployeeArchivedReason: strptr("Resigned"),
		},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestEmployeeList(t *testing.T) {
	app, db := newEmployeeApp(t)
	seedEmployees(t, db)

	t.Run("all", func(t *testing.T) {
		code, body := get(t, app, "/employees")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		assert.Len(t, data, 3)
		pagination := body["pagination"].(map[string]interface{})
		assert.EqualValues(t, 3, pagination["total"])
		assert.EqualValues(t, 1, pagination["page"])
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		code, body := get(t, app, "/employees?search=jane")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "Jane Doe", data[0].(map[string]interface{})["fullName"])
	})

	t.Run("search matches employee id", func(t *testing.T) {
		code, body := get(t, app, "/employees?search=24-GPC")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "24-GPC-0044", data[0].(map[string]interface{})["employeeId"])
	})

	t.Run("department and status filters combine", func(t *testing.T) {
		code, body := get(t, app, "/employees?department=Registrar&status=active")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "25-GPC-0001", data[0].(map[string]interface{})["employeeId"])
	})

	t.Run("pagination caps per_page", func(t *testing.T) {
		code, body := get(t, app, "/employees?page=2&per_page=2")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		assert.Len(t, data, 1)
		pagination := body["pagination"].(map[string]interface{})
		assert.EqualValues(t, 2, pagination["total_pages"])
		assert.Equal(t, false, pagination["has_next"])
		assert.Equal(t, true, pagination["has_prev"])
	})
}

func TestEmployeeGetByID(t *testing.T) {
	app, db := newEmployeeApp(t)
	seedEmployees(t, db)

	code, body := get(t, app, "/employees/25-GPC-0001")
	require.Equal(t, fiber.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", data["fullName"])
	assert.Equal(t, "Registrar", data["department"])
	assert.Equal(t, "active", data["status"])

	t.Run("unknown id", func(t *testing.T) {
		code, body := get(t, app, "/employees/ghost")
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, "Employee not found", body["message"])
	})
}
