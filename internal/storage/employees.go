package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"hrmanager/internal/models"
)

type employeeStoreImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewEmployeeStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) EmployeeStore {
	return &employeeStoreImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *employeeStoreImpl) FindByDepartment(ctx context.Context, departmentID string) ([]*models.Employee, error) {
	const selectEmployeesByDepartmentQuery = `
SELECT id,
       name,
       email,
       role,
       phone,
       address,
       position,
       created_at,
       updated_at
FROM employees
WHERE department_id = $1
ORDER BY created_at
`
	rows, err := s.pgPool.Query(
		ctx,
		selectEmployeesByDepartmentQuery,
		departmentID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", departmentID).
			Msg("failed to select employees by department")
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{DepartmentID: departmentID}
		err = rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Role,
			&employee.Phone,
			&employee.Address,
			&employee.Position,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan employee")
			return nil, err
		}
		employees = append(employees, employee)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(employees)).
		Str("department_id", departmentID).
		Msg("selected employees by department")

	return employees, nil
}

func (s *employeeStoreImpl) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	employee := &models.Employee{ID: id}

	const selectEmployeeByIDQuery = `
SELECT name,
       email,
       password,
       role,
       department_id,
       phone,
       address,
       position,
       created_at,
       updated_at
FROM employees
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectEmployeeByIDQuery,
		employee.ID,
	).Scan(
		&employee.Name,
		&employee.Email,
		&employee.Password,
		&employee.Role,
		&employee.DepartmentID,
		&employee.Phone,
		&employee.Address,
		&employee.Position,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("employee_id", id).
			Msg("failed to select employee by id")
		return nil, err
	}
	s.logger.Debug().
		Str("employee_id", employee.ID).
		Msg("selected employee by id")

	return employee, nil
}

func (s *employeeStoreImpl) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	employee := &models.Employee{Email: email}

	const selectEmployeeByEmailQuery = `
SELECT id,
       name,
       password,
       role,
       department_id,
       phone,
       address,
       position,
       created_at,
       updated_at
FROM employees
WHERE email = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectEmployeeByEmailQuery,
		employee.Email,
	).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Password,
		&employee.Role,
		&employee.DepartmentID,
		&employee.Phone,
		&employee.Address,
		&employee.Position,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select employee by email")
		return nil, err
	}
	s.logger.Debug().
		Str("employee_id", employee.ID).
		Msg("selected employee by email")

	return employee, nil
}

func (s *employeeStoreImpl) Create(ctx context.Context, employee *models.Employee) error {
	const insertEmployeeQuery = `
INSERT INTO employees (id,
                       name,
                       email,
                       password,
                       role,
                       department_id,
                       phone,
                       address,
                       position,
                       created_at,
                       updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertEmployeeQuery,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Password,
		employee.Role,
		employee.DepartmentID,
		employee.Phone,
		employee.Address,
		employee.Position,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert employee")
		return err
	}
	s.logger.Debug().
		Str("employee_id", employee.ID).
		Msg("inserted employee")

	return nil
}

func (s *employeeStoreImpl) UpdateByName(ctx context.Context, name string, params UpdateEmployeeParams) (*models.Employee, error) {
	employee := new(models.Employee)

	const updateEmployeeQuery = `
UPDATE employees
SET name = COALESCE($1, name),
    department_id = COALESCE($2, department_id),
    phone = COALESCE($3, phone),
    address = COALESCE($4, address),
    position = COALESCE($5, position),
    updated_at = now()
WHERE name = $6
RETURNING id, name, email, role, department_id, phone, address, position, created_at, updated_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateEmployeeQuery,
		params.Name,
		params.DepartmentID,
		params.Phone,
		params.Address,
		params.Position,
		name,
	).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Role,
		&employee.DepartmentID,
		&employee.Phone,
		&employee.Address,
		&employee.Position,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("name", name).
			Msg("failed to update employee")
		return nil, err
	}
	s.logger.Debug().
		Str("employee_id", employee.ID).
		Msg("updated employee")

	return employee, nil
}

func (s *employeeStoreImpl) DeleteByName(ctx context.Context, name string) error {
	const deleteEmployeeQuery = `
DELETE FROM employees
WHERE name = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteEmployeeQuery,
		name,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("name", name).
			Msg("failed to delete employee")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.logger.Debug().
		Str("name", name).
		Msg("deleted employee")

	return nil
}
