package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"hrmanager/internal/models"
	"hrmanager/internal/storage"
)

type employeeServiceImpl struct {
	logger    zerolog.Logger
	employees storage.EmployeeStore
}

func NewEmployeeService(
	logger zerolog.Logger,
	employees storage.EmployeeStore,
) EmployeeService {
	return &employeeServiceImpl{
		logger:    logger,
		employees: employees,
	}
}

func (s *employeeServiceImpl) GetByDepartment(ctx context.Context, departmentID string) ([]*models.Employee, error) {
	employees, err := s.employees.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", departmentID).
			Msg("failed to find employees by department")
		return nil, err
	}

	return employees, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("employee_id", id).
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

func (s *employeeServiceImpl) UpdateByName(ctx context.Context, name string, params UpdateEmployeeParams) (*models.Employee, error) {
	employee, err := s.employees.UpdateByName(ctx, name, storage.UpdateEmployeeParams{
		Name:         params.Name,
		DepartmentID: params.DepartmentID,
		Phone:        params.Phone,
		Address:      params.Address,
		Position:     params.Position,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("name", name).
				Msg("employee not found")
			return nil, ErrEmployeeNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to update employee")
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", employee.ID).
		Msg("updated employee")
	return employee, nil
}

func (s *employeeServiceImpl) DeleteByName(ctx context.Context, name string) error {
	err := s.employees.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("name", name).
				Msg("employee not found")
			return ErrEmployeeNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to delete employee")
		return err
	}

	s.logger.Info().
		Str("name", name).
		Msg("deleted employee")
	return nil
}
