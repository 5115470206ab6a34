package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/models"
	"hrmanager/internal/services"
)

type taskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	DepartmentID string    `json:"department_id"`
	AssignedTo   string    `json:"assigned_to"`
	Status       string    `json:"status"`
	DueDate      time.Time `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		DepartmentID: task.DepartmentID,
		AssignedTo:   task.AssignedTo,
		Status:       task.Status,
		DueDate:      task.DueDate,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"omitempty,max=65535"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	departmentName := c.Param("name")

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Title:          req.Title,
		Description:    req.Description,
		DepartmentName: departmentName,
		DueDate:        req.DueDate,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			abort(c, newNotFoundError(services.ErrDepartmentNotFound.Error()))
		case errors.Is(err, services.ErrNoAssignableEmployee):
			abort(c, newAPIError(http.StatusInternalServerError, services.ErrNoAssignableEmployee.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// resolveDepartment maps the :name route segment to a department id.
func (h *handlerImpl) resolveDepartment(c *gin.Context) (string, bool) {
	department, err := h.departments.GetByName(c, c.Param("name"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get department")
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			abort(c, newNotFoundError(services.ErrDepartmentNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return "", false
	}
	return department.ID, true
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	departmentID, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.GetTasksByDepartment(c, departmentID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, newTaskResponse(task))
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	departmentID, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c, c.Param("id"), departmentID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

type updateTaskRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=65535"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	Status      *string    `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	departmentID, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:           c.Param("id"),
		DepartmentID: departmentID,
		Title:        req.Title,
		Description:  req.Description,
		AssignedTo:   req.AssignedTo,
		Status:       req.Status,
		DueDate:      req.DueDate,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		case errors.Is(err, services.ErrInvalidTaskStatus):
			abort(c, newBadRequestError(services.ErrInvalidTaskStatus.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	departmentID, ok := h.resolveDepartment(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, c.Param("id"), departmentID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
