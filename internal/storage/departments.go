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

type departmentStoreImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewDepartmentStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) DepartmentStore {
	return &departmentStoreImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *departmentStoreImpl) FindByName(ctx context.Context, name string) (*models.Department, error) {
	department := &models.Department{Name: name}

	const selectDepartmentByNameQuery = `
SELECT id,
       description,
       created_at,
       updated_at
FROM departments
WHERE name = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectDepartmentByNameQuery,
		department.Name,
	).Scan(
		&department.ID,
		&department.Description,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("name", name).
			Msg("failed to select department by name")
		return nil, err
	}
	s.logger.Debug().
		Str("department_id", department.ID).
		Str("name", department.Name).
		Msg("selected department by name")

	return department, nil
}

func (s *departmentStoreImpl) FindAll(ctx context.Context) ([]*models.Department, error) {
	const selectDepartmentsQuery = `
SELECT id,
       name,
       description,
       created_at,
       updated_at
FROM departments
ORDER BY name
`
	rows, err := s.pgPool.Query(ctx, selectDepartmentsQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select departments")
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department := new(models.Department)
		err = rows.Scan(
			&department.ID,
			&department.Name,
			&department.Description,
			&department.CreatedAt,
			&department.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan department")
			return nil, err
		}
		departments = append(departments, department)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(departments)).
		Msg("selected departments")

	return departments, nil
}

func (s *departmentStoreImpl) Create(ctx context.Context, department *models.Department) error {
	const insertDepartmentQuery = `
INSERT INTO departments (id,
                         name,
                         description,
                         created_at,
                         updated_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertDepartmentQuery,
		department.ID,
		department.Name,
		department.Description,
		department.CreatedAt,
		department.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Str("name", department.Name).
			Msg("failed to insert department")
		return err
	}
	s.logger.Debug().
		Str("department_id", department.ID).
		Str("name", department.Name).
		Msg("inserted department")

	return nil
}

func (s *departmentStoreImpl) UpdateByName(ctx context.Context, name string, params UpdateDepartmentParams) (*models.Department, error) {
	department := new(models.Department)

	const updateDepartmentQuery = `
UPDATE departments
SET name = COALESCE($1, name),
    description = COALESCE($2, description),
    updated_at = now()
WHERE name = $3
RETURNING id, name, description, created_at, updated_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateDepartmentQuery,
		params.Name,
		params.Description,
		name,
	).Scan(
		&department.ID,
		&department.Name,
		&department.Description,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Str("name", name).
			Msg("failed to update department")
		return nil, err
	}
	s.logger.Debug().
		Str("department_id", department.ID).
		Msg("updated department")

	return department, nil
}

func (s *departmentStoreImpl) DeleteByName(ctx context.Context, name string) error {
	const deleteDepartmentQuery = `
DELETE FROM departments
WHERE name = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteDepartmentQuery,
		name,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("name", name).
			Msg("failed to delete department")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.logger.Debug().
		Str("name", name).
		Msg("deleted department")

	return nil
}
