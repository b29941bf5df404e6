package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hrms_backend/internals/features/activity_logs/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.ActivityLogModel{}))
	return db
}

func TestDBRecorder_PersistsOnClose(t *testing.T) {
	db := newTestDB(t)
	rec := NewDBRecorder(db)

	rec.Record(Event{
		UserName:     "HR Admin",
		ActionType:   "CREATE",
		ResourceType: "attendance",
		ResourceID:   "abc-123",
		ResourceName: "Jane Doe - 2024-01-10",
		Description:  "Attendance record created for Jane Doe (E1) on 2024-01-10",
		IPAddress:    "127.0.0.1",
		Metadata:     map[string]interface{}{"employeeId": "E1", "status": "present"},
	})
	rec.Record(Event{
		ActionType:   "DELETE",
		ResourceType: "attendance",
		ResourceID:   "def-456",
	})

	// Close drains the buffer; entries must be durable afterwards.
	rec.Close()

	var rows []model.ActivityLogModel
	require.NoError(t, db.Order("activity_log_action_type").Find(&rows).Error)
	require.Len(t, rows, 2)

	created := rows[0]
	assert.Equal(t, "CREATE", created.ActivityLogActionType)
	assert.Equal(t, "HR Admin", created.ActivityLogUserName)
	assert.Equal(t, "abc-123", created.ActivityLogResourceID)
	assert.Equal(t, "success", created.ActivityLogStatus, "status defaults to success")
	assert.NotEmpty(t, created.ActivityLogID)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(created.ActivityLogMetadata, &meta))
	assert.Equal(t, "E1", meta["employeeId"])
	assert.Equal(t, "present", meta["status"])

	deleted := rows[1]
	assert.Equal(t, "System", deleted.ActivityLogUserName, "actor defaults to System")
	assert.Empty(t, deleted.ActivityLogMetadata)
}

func TestDBRecorder_CloseIsIdempotent(t *testing.T) {
	rec := NewDBRecorder(newTestDB(t))
	rec.Close()
	rec.Close()
}

func TestDBRecorder_RecordNeverBlocksWhenFull(t *testing.T) {
	// worker is already stopped, so the channel can only fill up
	rec := &DBRecorder{db: newTestDB(t), ch: make(chan Event, 1)}
	rec.Record(Event{ActionType: "CREATE", ResourceType: "attendance"})
	rec.Record(Event{ActionType: "UPDATE", ResourceType: "attendance"}) // dropped, not blocked
	assert.Len(t, rec.ch, 1)
}
