package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hrmanager/internal/models"
	"hrmanager/internal/storage"
)

type departmentServiceImpl struct {
	logger      zerolog.Logger
	departments storage.DepartmentStore
	employees   storage.EmployeeStore
}

func NewDepartmentService(
	logger zerolog.Logger,
	departments storage.DepartmentStore,
	employees storage.EmployeeStore,
) DepartmentService {
	return &departmentServiceImpl{
		logger:      logger,
		departments: departments,
		employees:   employees,
	}
}

func (s *departmentServiceImpl) Create(ctx context.Context, params CreateDepartmentParams) (*models.Department, error) {
	now := time.Now()
	department := &models.Department{
		Name:        params.Name,
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	departmentUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate department uuid")
		return nil, err
	}
	department.ID = departmentUUID.String()

	err = s.departments.Create(ctx, department)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			s.logger.Error().
				Str("name", department.Name).
				Msg("department with this name already exists")
			return nil, ErrDepartmentAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to create department")
		return nil, err
	}

	s.logger.Info().
		Str("department_id", department.ID).
		Str("name", department.Name).
		Msg("created department")
	return department, nil
}

func (s *departmentServiceImpl) GetAll(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departments.FindAll(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find departments")
		return nil, err
	}

	return departments, nil
}

func (s *departmentServiceImpl) GetByName(ctx context.Context, name string) (*models.Department, error) {
	department, err := s.departments.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("name", name).
				Msg("department not found")
			return nil, ErrDepartmentNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find department by name")
		return nil, err
	}

	employees, err := s.employees.FindByDepartment(ctx, department.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", department.ID).
			Msg("failed to find employees by department")
		return nil, err
	}

	department.EmployeeIDs = make([]string, 0, len(employees))
	for _, employee := range employees {
		department.EmployeeIDs = append(department.EmployeeIDs, employee.ID)
	}

	return department, nil
}

func (s *departmentServiceImpl) UpdateByName(ctx context.Context, name string, params UpdateDepartmentParams) (*models.Department, error) {
	department, err := s.departments.UpdateByName(ctx, name, storage.UpdateDepartmentParams{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			s.logger.Error().
				Str("name", name).
				Msg("department not found")
			return nil, ErrDepartmentNotFound
		case errors.Is(err, storage.ErrAlreadyExists):
			s.logger.Error().
				Str("name", name).
				Msg("department with the new name already exists")
			return nil, ErrDepartmentAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to update department")
		return nil, err
	}

	s.logger.Info().
		Str("department_id", department.ID).
		Msg("updated department")
	return department, nil
}

func (s *departmentServiceImpl) DeleteByName(ctx context.Context, name string) error {
	err := s.departments.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("name", name).
				Msg("department not found")
			return ErrDepartmentNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to delete department")
		return err
	}

	s.logger.Info().
		Str("name", name).
		Msg("deleted department")
	return nil
}
