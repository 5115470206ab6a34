package services

import (
	"context"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hrmanager/internal/models"
	"hrmanager/internal/storage"
)

type authServiceImpl struct {
	logger      zerolog.Logger
	employees   storage.EmployeeStore
	departments storage.DepartmentStore
	tokens      TokenService
}

func NewAuthService(
	logger zerolog.Logger,
	employees storage.EmployeeStore,
	departments storage.DepartmentStore,
	tokens TokenService,
) AuthService {
	return &authServiceImpl{
		logger:      logger,
		employees:   employees,
		departments: departments,
		tokens:      tokens,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	employee, err := s.employees.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("email", params.Email).
				Msg("employee not found")
			return nil, ErrEmployeeNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find employee by email")
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(params.Password, employee.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	}
	if !match {
		s.logger.Error().
			Str("employee_id", employee.ID).
			Msg("password mismatch")
		return nil, ErrPasswordMismatch
	}

	token, expiresAt, err := s.tokens.Issue(IssueTokenParams{
		EmployeeID: employee.ID,
		Email:      employee.Email,
		IsAdmin:    employee.IsAdmin(),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", employee.ID).
		Msg("logged in")
	return &LoginResult{
		Employee:       employee,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*models.Employee, error) {
	if params.Role != models.RoleAdmin && params.Role != models.RoleEmployee {
		return nil, ErrInvalidRole
	}

	department, err := s.departments.FindByName(ctx, params.DepartmentName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("department", params.DepartmentName).
				Msg("department not found")
			return nil, ErrDepartmentNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find department by name")
		return nil, err
	}

	now := time.Now()
	employee := &models.Employee{
		Name:         params.Name,
		Email:        params.Email,
		Role:         params.Role,
		DepartmentID: department.ID,
		Phone:        params.Phone,
		Address:      params.Address,
		Position:     params.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	employeeUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate employee uuid")
		return nil, err
	}
	employee.ID = employeeUUID.String()

	passwordHash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}
	employee.Password = passwordHash

	err = s.employees.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			s.logger.Error().
				Str("email", employee.Email).
				Msg("employee with this email already exists")
			return nil, ErrEmployeeAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", employee.ID).
		Str("role", employee.Role).
		Msg("registered employee")
	return employee, nil
}

func (s *authServiceImpl) GetProfile(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("employee_id", employeeID).
				Msg("employee not found")
			return nil, ErrEmployeeNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find employee by id")
		return nil, err
	}

	return employee, nil
}
