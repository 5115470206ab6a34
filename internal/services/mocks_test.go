package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrmanager/internal/models"
	"hrmanager/internal/storage"
)

type departmentStoreMock struct {
	mock.Mock
}

func (m *departmentStoreMock) FindByName(ctx context.Context, name string) (*models.Department, error) {
	args := m.Called(ctx, name)

	var department *models.Department
	if value := args.Get(0); value != nil {
		department = value.(*models.Department)
	}
	return department, args.Error(1)
}

func (m *departmentStoreMock) FindAll(ctx context.Context) ([]*models.Department, error) {
	args := m.Called(ctx)

	var departments []*models.Department
	if value := args.Get(0); value != nil {
		departments = value.([]*models.Department)
	}
	return departments, args.Error(1)
}

func (m *departmentStoreMock) Create(ctx context.Context, department *models.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *departmentStoreMock) UpdateByName(ctx context.Context, name string, params storage.UpdateDepartmentParams) (*models.Department, error) {
	args := m.Called(ctx, name, params)

	var department *models.Department
	if value := args.Get(0); value != nil {
		department = value.(*models.Department)
	}
	return department, args.Error(1)
}

func (m *departmentStoreMock) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type employeeStoreMock struct {
	mock.Mock
}

func (m *employeeStoreMock) FindByDepartment(ctx context.Context, departmentID string) ([]*models.Employee, error) {
	args := m.Called(ctx, departmentID)

	var employees []*models.Employee
	if value := args.Get(0); value != nil {
		employees = value.([]*models.Employee)
	}
	return employees, args.Error(1)
}

func (m *employeeStoreMock) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	args := m.Called(ctx, id)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *employeeStoreMock) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	args := m.Called(ctx, email)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *employeeStoreMock) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *employeeStoreMock) UpdateByName(ctx context.Context, name string, params storage.UpdateEmployeeParams) (*models.Employee, error) {
	args := m.Called(ctx, name, params)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *employeeStoreMock) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) CountByAssignee(ctx context.Context, employeeID string) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskStoreMock) CountByAssigneeAndStatus(ctx context.Context, employeeID string, statuses []string) (int64, error) {
	args := m.Called(ctx, employeeID, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskStoreMock) FindByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error) {
	args := m.Called(ctx, departmentID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) FindByID(ctx context.Context, id, departmentID string) (*models.Task, error) {
	args := m.Called(ctx, id, departmentID)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskStoreMock) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskStoreMock) Update(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskStoreMock) DeleteByID(ctx context.Context, id, departmentID string) error {
	args := m.Called(ctx, id, departmentID)
	return args.Error(0)
}
