package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hrms_backend/internals/features/employees/model"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

type ListFilter struct {
	Search     string
	Department string
	Status     string
	Offset     int
	Limit      int
}

func (r *EmployeeRepository) List(ctx context.Context, f ListFilter) ([]model.EmployeeModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.EmployeeModel{})

	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(employee_full_name) LIKE ? OR LOWER(employee_id) LIKE ?", needle, needle)
	}
	if f.Department != "" {
		q = q.Where("employee_department = ?", f.Department)
	}
	if f.Status != "" {
		q = q.Where("employee_status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.EmployeeModel
	err := q.
		Order("employee_full_name ASC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*model.EmployeeModel, error) {
	var row model.EmployeeModel
	err := r.DB.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
