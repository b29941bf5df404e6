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

	"hrms_backend/internals/features/activity_logs/model"
	activityservice "hrms_backend/internals/features/activity_logs/service"
	"hrms_backend/internals/route/details"
)

func newLogApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.ActivityLogModel{}))

	app := fiber.New()
	details.ActivityLogRoutes(app, db)
	return app, db
}

func TestActivityLogList(t *testing.T) {
	app, db := newLogApp(t)

	// write through the recorder, the same path production uses
	rec := activityservice.NewDBRecorder(db)
	rec.Record(activityservice.Event{
		UserName: "HR Admin", ActionType: "CREATE", ResourceType: "attendance",
		ResourceID: "a-1", Description: "created",
		Metadata: map[string]interface{}{"employeeId": "E1"},
	})
	rec.Record(activityservice.Event{
		UserName: "HR Admin", ActionType: "DELETE", ResourceType: "attendance",
		ResourceID: "a-2", Description: "deleted",
	})
	rec.Record(activityservice.Event{
		UserName: "System", ActionType: "UPDATE", ResourceType: "employee",
		ResourceID: "e-1", Description: "updated",
	})
	rec.Close()

	list := func(target string) (int, map[string]interface{}) {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &out))
		return resp.StatusCode, out
	}

	t.Run("all entries with pagination block", func(t *testing.T) {
		code, body := list("/activity-logs")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		assert.Len(t, data, 3)
		pagination := body["pagination"].(map[string]interface{})
		assert.EqualValues(t, 3, pagination["total"])
	})

	t.Run("filter by resourceType", func(t *testing.T) {
		code, body := list("/activity-logs?resourceType=employee")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "UPDATE", data[0].(map[string]interface{})["actionType"])
	})

	t.Run("filter by actionType", func(t *testing.T) {
		code, body := list("/activity-logs?actionType=CREATE")
		require.Equal(t, fiber.StatusOK, code)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		entry := data[0].(map[string]interface{})
		assert.Equal(t, "a-1", entry["resourceId"])
		meta := entry["metadata"].(map[string]interface{})
		assert.Equal(t, "E1", meta["employeeId"])
	})

	t.Run("per_page limits the page", func(t *testing.T) {
		code, body := list("/activity-logs?per_page=2")
		require.Equal(t, fiber.StatusOK, code)
		assert.Len(t, body["data"].([]interface{}), 2)
		pagination := body["pagination"].(map[string]interface{})
		assert.Equal(t, true, pagination["has_next"])
	})
}
