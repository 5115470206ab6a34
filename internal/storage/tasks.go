package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"hrmanager/internal/models"
)

type taskStoreImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskStore {
	return &taskStoreImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskStoreImpl) CountByAssignee(ctx context.Context, employeeID string) (int64, error) {
	const countTasksByAssigneeQuery = `
SELECT count(*)
FROM tasks
WHERE assigned_to = $1
`
	var count int64
	err := s.pgPool.QueryRow(
		ctx,
		countTasksByAssigneeQuery,
		employeeID,
	).Scan(&count)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("employee_id", employeeID).
			Msg("failed to count tasks by assignee")
		return 0, err
	}

	return count, nil
}

func (s *taskStoreImpl) CountByAssigneeAndStatus(ctx context.Context, employeeID string, statuses []string) (int64, error) {
	const countTasksByAssigneeAndStatusQuery = `
SELECT count(*)
FROM tasks
WHERE assigned_to = $1 AND status = ANY($2)
`
	var count int64
	err := s.pgPool.QueryRow(
		ctx,
		countTasksByAssigneeAndStatusQuery,
		employeeID,
		statuses,
	).Scan(&count)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("employee_id", employeeID).
			Msg("failed to count tasks by assignee and status")
		return 0, err
	}

	return count, nil
}

func (s *taskStoreImpl) FindByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error) {
	const selectTasksByDepartmentQuery = `
SELECT id,
       title,
       description,
       assigned_to,
       status,
       due_date,
       created_at,
       updated_at
FROM tasks
WHERE department_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksByDepartmentQuery,
		departmentID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", departmentID).
			Msg("failed to select tasks by department")
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{DepartmentID: departmentID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.AssignedTo,
			&task.Status,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("department_id", departmentID).
		Msg("selected tasks by department")

	return tasks, nil
}

func (s *taskStoreImpl) FindByID(ctx context.Context, id, departmentID string) (*models.Task, error) {
	task := &models.Task{
		ID:           id,
		DepartmentID: departmentID,
	}

	const selectTaskByIDQuery = `
SELECT title,
       description,
       assigned_to,
       status,
       due_date,
       created_at,
       updated_at
FROM tasks
WHERE id = $1 AND department_id = $2
`
	err := s.pgPool.QueryRow(
		ctx,
		selectTaskByIDQuery,
		task.ID,
		task.DepartmentID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.AssignedTo,
		&task.Status,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to select task by id")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("selected task by id")

	return task, nil
}

func (s *taskStoreImpl) Create(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   title,
                   description,
                   department_id,
                   assigned_to,
                   status,
                   due_date,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Title,
		task.Description,
		task.DepartmentID,
		task.AssignedTo,
		task.Status,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	return nil
}

func (s *taskStoreImpl) Update(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    assigned_to = $3,
    status = $4,
    due_date = $5,
    updated_at = $6
WHERE id = $7 AND department_id = $8
`
	tag, err := s.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.AssignedTo,
		task.Status,
		task.DueDate,
		task.UpdatedAt,
		task.ID,
		task.DepartmentID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("updated task")

	return nil
}

func (s *taskStoreImpl) DeleteByID(ctx context.Context, id, departmentID string) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND department_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
		departmentID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.logger.Debug().
		Str("task_id", id).
		Msg("deleted task")

	return nil
}
