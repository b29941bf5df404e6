// file: internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/attendance/model"
)

var ErrNotFound = gorm.ErrRecordNotFound

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// ListFilter holds the optional query filters; all present filters
// combine with AND. An invalid status is dropped by the controller
// before it reaches here.
type ListFilter struct {
	EmployeeID string
	Date       string
	StartDate  string
	EndDate    string
	Status     string
}

func (r *AttendanceRepository) List(ctx context.Context, f ListFilter) ([]model.AttendanceModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.AttendanceModel{})

	if f.EmployeeID != "" {
		q = q.Where("attendance_employee_id = ?", f.EmployeeID)
	}
	if f.Date != "" {
		q = q.Where("attendance_date = ?", f.Date)
	}
	if f.StartDate != "" {
		q = q.Where("attendance_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("attendance_date <= ?", f.EndDate)
	}
	if f.Status != "" && constants.IsValidAttendanceStatus(f.Status) {
		q = q.Where("attendance_status = ?", f.Status)
	}

	var rows []model.AttendanceModel
	err := q.
		Order("attendance_date DESC").
		Order("attendance_check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AttendanceRepository) FindByEmployeeDate(ctx context.Context, employeeID, date string) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_employee_id = ? AND attendance_date = ?", employeeID, date).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert inserts or merges on the (employee_id, date) unique pair.
// Merge semantics: check-in/check-out/notes/images keep the existing
// value unless the incoming one is non-null; status is always
// overwritten. The insert-vs-update signal is an explicit existence
// check inside the same transaction, never insert-id inference.
// The returned row is re-read after the write so the caller always sees
// the authoritative state.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *model.AttendanceModel) (*model.AttendanceModel, bool, error) {
	var (
		saved   model.AttendanceModel
		created bool
	)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceModel
		err := tx.
			Where("attendance_employee_id = ? AND attendance_date = ?", rec.AttendanceEmployeeID, rec.AttendanceDate).
			Take(&existing).Error
		switch {
		case err == nil:
			created = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
		default:
			return err
		}

		now := time.Now()
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_employee_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"attendance_check_in":        gorm.Expr("COALESCE(excluded.attendance_check_in, attendance.attendance_check_in)"),
				"attendance_check_out":       gorm.Expr("COALESCE(excluded.attendance_check_out, attendance.attendance_check_out)"),
				"attendance_notes":           gorm.Expr("COALESCE(excluded.attendance_notes, attendance.attendance_notes)"),
				"attendance_check_in_image":  gorm.Expr("COALESCE(excluded.attendance_check_in_image, attendance.attendance_check_in_image)"),
				"attendance_check_out_image": gorm.Expr("COALESCE(excluded.attendance_check_out_image, attendance.attendance_check_out_image)"),
				"attendance_status":          gorm.Expr("excluded.attendance_status"),
				"attendance_updated_at":      now,
			}),
		}).Create(rec).Error; err != nil {
			// A racing insert between the check and the write still lands in
			// the merge path; it only flips the classification.
			if IsUniqueViolation(err) {
				created = false
			} else {
				return err
			}
		}

		return tx.
			Where("attendance_employee_id = ? AND attendance_date = ?", rec.AttendanceEmployeeID, rec.AttendanceDate).
			Take(&saved).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &saved, created, nil
}

// UpdateFields applies a partial update and reports affected rows.
func (r *AttendanceRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	fields["attendance_updated_at"] = time.Now()
	res := r.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.AttendanceModel{}).Error
}

func (r *AttendanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.AttendanceModel{}).Count(&n).Error
	return n, err
}

// IsUniqueViolation classifies a duplicate-key error.
// String fallback keeps this working for pgx-wrapped errors and the
// sqlite dialect used in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}
