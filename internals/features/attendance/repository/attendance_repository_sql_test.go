package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Exact-SQL expectations against the postgres dialect, so the clauses the
// production database sees stay pinned down even though the behavior
// tests run on sqlite.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestList_GeneratedSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "attendance" WHERE attendance_employee_id = \$1 AND attendance_date >= \$2 AND attendance_status = \$3 ORDER BY attendance_date DESC,attendance_check_in DESC`).
		WithArgs("E1", "2024-01-01", "present").
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_id", "attendance_employee_id", "attendance_employee_name",
			"attendance_date", "attendance_status",
		}).AddRow(id.String(), "E1", "Jane Doe", "2024-01-10", "present"))

	rows, err := repo.List(context.Background(), ListFilter{
		EmployeeID: "E1",
		StartDate:  "2024-01-01",
		Status:     "present",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].AttendanceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_GeneratedSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	id := uuid.NewString()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance" WHERE attendance_id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFields_GeneratedSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	id := uuid.NewString()
	mock.ExpectBegin()
	// column order inside SET is alphabetical under gorm's map updates
	mock.ExpectExec(`UPDATE "attendance" SET "attendance_status"=\$1,"attendance_updated_at"=\$2 WHERE attendance_id = \$3`).
		WithArgs("late", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateFields(context.Background(), id, map[string]interface{}{
		"attendance_status": "late",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
