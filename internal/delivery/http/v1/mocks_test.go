package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrmanager/internal/models"
	"hrmanager/internal/services"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, params services.LoginParams) (*services.LoginResult, error) {
	args := m.Called(ctx, params)

	var result *services.LoginResult
	if value := args.Get(0); value != nil {
		result = value.(*services.LoginResult)
	}
	return result, args.Error(1)
}

func (m *authServiceMock) Register(ctx context.Context, params services.RegisterParams) (*models.Employee, error) {
	args := m.Called(ctx, params)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *authServiceMock) GetProfile(ctx context.Context, employeeID string) (*models.Employee, error) {
	args := m.Called(ctx, employeeID)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

type departmentServiceMock struct {
	mock.Mock
}

func (m *departmentServiceMock) Create(ctx context.Context, params services.CreateDepartmentParams) (*models.Department, error) {
	args := m.Called(ctx, params)

	var department *models.Department
	if value := args.Get(0); value != nil {
		department = value.(*models.Department)
	}
	return department, args.Error(1)
}

func (m *departmentServiceMock) GetAll(ctx context.Context) ([]*models.Department, error) {
	args := m.Called(ctx)

	var departments []*models.Department
	if value := args.Get(0); value != nil {
		departments = value.([]*models.Department)
	}
	return departments, args.Error(1)
}

func (m *departmentServiceMock) GetByName(ctx context.Context, name string) (*models.Department, error) {
	args := m.Called(ctx, name)

	var department *models.Department
	if value := args.Get(0); value != nil {
		department = value.(*models.Department)
	}
	return department, args.Error(1)
}

func (m *departmentServiceMock) UpdateByName(ctx context.Context, name string, params services.UpdateDepartmentParams) (*models.Department, error) {
	args := m.Called(ctx, name, params)

	var department *models.Department
	if value := args.Get(0); value != nil {
		department = value.(*models.Department)
	}
	return department, args.Error(1)
}

func (m *departmentServiceMock) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, params services.CreateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) SelectAssignee(ctx context.Context, departmentID string) (*models.Employee, error) {
	args := m.Called(ctx, departmentID)

	var employee *models.Employee
	if value := args.Get(0); value != nil {
		employee = value.(*models.Employee)
	}
	return employee, args.Error(1)
}

func (m *taskServiceMock) GetTasksByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error) {
	args := m.Called(ctx, departmentID)

	var tasks []*models.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]*models.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id, departmentID string) (*models.Task, error) {
	args := m.Called(ctx, id, departmentID)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, params services.UpdateTaskParams) (*models.Task, error) {
	args := m.Called(ctx, params)

	var task *models.Task
	if value := args.Get(0); value != nil {
		task = value.(*models.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, departmentID string) error {
	args := m.Called(ctx, id, departmentID)
	return args.Error(0)
}
