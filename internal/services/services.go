package services

import (
	"context"
	"errors"
	"time"

	"hrmanager/internal/models"
)

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")

	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
	ErrPasswordMismatch      = errors.New("password mismatch")
	ErrInvalidRole           = errors.New("invalid role")

	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department already exists")

	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrNoAssignableEmployee = errors.New("no assignable employee in department")
)

type TokenService interface {
	// Issue signs a token carrying the given identity claims.
	// The expiry is fixed at the configured TTL from the moment of issuance.
	Issue(params IssueTokenParams) (string, time.Time, error)

	// Verify checks the token signature and expiry and returns the
	// decoded claims. It returns ErrTokenExpired for tokens past their
	// expiry and ErrTokenMalformed for anything else that fails to parse.
	Verify(token string) (*TokenClaims, error)
}

type AuthService interface {
	// Login authenticates an employee by email and password and
	// issues a fresh token.
	//
	// It returns ErrEmployeeNotFound if no employee has the given
	// email or ErrPasswordMismatch if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Register creates an employee with a hashed password.
	//
	// It returns ErrEmployeeAlreadyExists if the email is taken and
	// ErrDepartmentNotFound if the target department doesn't exist.
	Register(ctx context.Context, params RegisterParams) (*models.Employee, error)

	// GetProfile returns the employee behind the given id.
	GetProfile(ctx context.Context, employeeID string) (*models.Employee, error)
}

type DepartmentService interface {
	Create(ctx context.Context, params CreateDepartmentParams) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)

	// GetByName also loads the informational employee id set.
	GetByName(ctx context.Context, name string) (*models.Department, error)
	UpdateByName(ctx context.Context, name string, params UpdateDepartmentParams) (*models.Department, error)
	DeleteByName(ctx context.Context, name string) error
}

type EmployeeService interface {
	GetByDepartment(ctx context.Context, departmentID string) ([]*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	UpdateByName(ctx context.Context, name string, params UpdateEmployeeParams) (*models.Employee, error)
	DeleteByName(ctx context.Context, name string) error
}

type TaskService interface {
	// CreateTask resolves the department by name, picks the least-loaded
	// assignee and persists the task. The due date defaults to seven days
	// from creation when the params carry none.
	//
	// It returns ErrDepartmentNotFound if the department doesn't exist
	// and ErrNoAssignableEmployee if the department has no employees;
	// in the latter case no task is created.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// SelectAssignee picks the employee of the department with the
	// fewest assigned tasks, breaking ties on the number of tasks
	// still pending or in progress. Remaining ties go to whichever
	// candidate was encountered first.
	SelectAssignee(ctx context.Context, departmentID string) (*models.Employee, error)

	GetTasksByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error)
	GetTask(ctx context.Context, id, departmentID string) (*models.Task, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)
	DeleteTask(ctx context.Context, id, departmentID string) error
}

type IssueTokenParams struct {
	EmployeeID string
	Email      string
	IsAdmin    bool
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	Employee       *models.Employee
	Token          string
	TokenExpiresAt time.Time
}

type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	Role           string
	DepartmentName string
	Phone          string
	Address        string
	Position       string
}

type CreateDepartmentParams struct {
	Name        string
	Description string
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

type CreateTaskParams struct {
	Title          string
	Description    string
	DepartmentName string
	DueDate        *time.Time
}

type UpdateTaskParams struct {
	ID           string
	DepartmentID string
	Title        *string
	Description  *string
	AssignedTo   *string
	Status       *string
	DueDate      *time.Time
}
