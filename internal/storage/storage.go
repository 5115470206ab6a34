package storage

import (
	"context"
	"errors"

	"hrmanager/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type DepartmentStore interface {
	FindByName(ctx context.Context, name string) (*models.Department, error)
	FindAll(ctx context.Context) ([]*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	UpdateByName(ctx context.Context, name string, params UpdateDepartmentParams) (*models.Department, error)
	DeleteByName(ctx context.Context, name string) error
}

type EmployeeStore interface {
	FindByDepartment(ctx context.Context, departmentID string) ([]*models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	UpdateByName(ctx context.Context, name string, params UpdateEmployeeParams) (*models.Employee, error)
	DeleteByName(ctx context.Context, name string) error
}

type TaskStore interface {
	CountByAssignee(ctx context.Context, employeeID string) (int64, error)
	CountByAssigneeAndStatus(ctx context.Context, employeeID string, statuses []string) (int64, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error)
	FindByID(ctx context.Context, id, departmentID string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	DeleteByID(ctx context.Context, id, departmentID string) error
}

type UpdateDepartmentParams struct {
	Name        *string
	Description *string
}

type UpdateEmployeeParams struct {
	Name         *string
	DepartmentID *string
	Phone        *string
	Address      *string
	Position     *string
}
