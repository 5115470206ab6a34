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

// defaultDueDateOffset is applied when a task is created without
// an explicit due date.
const defaultDueDateOffset = 7 * 24 * time.Hour

// pendingStatuses are the statuses counted as open load during
// assignee selection.
var pendingStatuses = []string{models.StatusPending, models.StatusInProgress}

type taskServiceImpl struct {
	logger      zerolog.Logger
	tasks       storage.TaskStore
	employees   storage.EmployeeStore
	departments storage.DepartmentStore
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskStore,
	employees storage.EmployeeStore,
	departments storage.DepartmentStore,
) TaskService {
	return &taskServiceImpl{
		logger:      logger,
		tasks:       tasks,
		employees:   employees,
		departments: departments,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
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

	assignee, err := s.SelectAssignee(ctx, department.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &models.Task{
		Title:        params.Title,
		Description:  params.Description,
		DepartmentID: department.ID,
		AssignedTo:   assignee.ID,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if params.DueDate != nil {
		task.DueDate = *params.DueDate
	} else {
		task.DueDate = now.Add(defaultDueDateOffset)
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}
	task.ID = taskUUID.String()

	err = s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("assigned_to", task.AssignedTo).
		Str("department_id", task.DepartmentID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) SelectAssignee(ctx context.Context, departmentID string) (*models.Employee, error) {
	candidates, err := s.employees.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", departmentID).
			Msg("failed to find employees by department")
		return nil, err
	}
	if len(candidates) == 0 {
		s.logger.Error().
			Str("department_id", departmentID).
			Msg("no employees in department")
		return nil, ErrNoAssignableEmployee
	}

	var (
		best        *models.Employee
		bestTotal   int64
		bestPending int64
	)
	for _, candidate := range candidates {
		total, err := s.tasks.CountByAssignee(ctx, candidate.ID)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("employee_id", candidate.ID).
				Msg("failed to count tasks by assignee")
			return nil, err
		}

		pending, err := s.tasks.CountByAssigneeAndStatus(ctx, candidate.ID, pendingStatuses)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("employee_id", candidate.ID).
				Msg("failed to count pending tasks by assignee")
			return nil, err
		}

		// Strict comparison keeps the first-encountered candidate on
		// full ties.
		if best == nil ||
			total < bestTotal ||
			(total == bestTotal && pending < bestPending) {
			best = candidate
			bestTotal = total
			bestPending = pending
		}
	}

	s.logger.Debug().
		Str("employee_id", best.ID).
		Int64("total_tasks", bestTotal).
		Int64("pending_tasks", bestPending).
		Msg("selected assignee")
	return best, nil
}

func (s *taskServiceImpl) GetTasksByDepartment(ctx context.Context, departmentID string) ([]*models.Task, error) {
	tasks, err := s.tasks.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("department_id", departmentID).
			Msg("failed to find tasks by department")
		return nil, err
	}

	return tasks, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id, departmentID string) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, id, departmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find task by id")
		return nil, err
	}

	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if params.Status != nil {
		status := *params.Status
		if status != models.StatusPending &&
			status != models.StatusInProgress &&
			status != models.StatusCompleted {
			return nil, ErrInvalidTaskStatus
		}
	}

	task, err := s.tasks.FindByID(ctx, params.ID, params.DepartmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to find task by id")
		return nil, err
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.AssignedTo != nil {
		task.AssignedTo = *params.AssignedTo
	}
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.DueDate != nil {
		task.DueDate = *params.DueDate
	}
	task.UpdatedAt = time.Now()

	err = s.tasks.Update(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id, departmentID string) error {
	err := s.tasks.DeleteByID(ctx, id, departmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
