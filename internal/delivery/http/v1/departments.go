package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/models"
	"hrmanager/internal/services"
)

type departmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	EmployeeIDs []string  `json:"employee_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newDepartmentResponse(department *models.Department) departmentResponse {
	return departmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		EmployeeIDs: department.EmployeeIDs,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}

type createDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=1024"`
}

func (h *handlerImpl) HandleCreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	department, err := h.departments.Create(c, services.CreateDepartmentParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create department")
		switch {
		case errors.Is(err, services.ErrDepartmentAlreadyExists):
			abort(c, newConflictError(services.ErrDepartmentAlreadyExists.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, newDepartmentResponse(department))
}

func (h *handlerImpl) HandleGetDepartments(c *gin.Context) {
	departments, err := h.departments.GetAll(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get departments")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]departmentResponse, 0, len(departments))
	for _, department := range departments {
		response = append(response, newDepartmentResponse(department))
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetDepartment(c *gin.Context) {
	name := c.Param("name")

	department, err := h.departments.GetByName(c, name)
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
		return
	}

	c.JSON(http.StatusOK, newDepartmentResponse(department))
}

type updateDepartmentRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1024"`
}

func (h *handlerImpl) HandleUpdateDepartment(c *gin.Context) {
	name := c.Param("name")

	var req updateDepartmentRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	department, err := h.departments.UpdateByName(c, name, services.UpdateDepartmentParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update department")
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			abort(c, newNotFoundError(services.ErrDepartmentNotFound.Error()))
		case errors.Is(err, services.ErrDepartmentAlreadyExists):
			abort(c, newConflictError(services.ErrDepartmentAlreadyExists.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newDepartmentResponse(department))
}

func (h *handlerImpl) HandleDeleteDepartment(c *gin.Context) {
	name := c.Param("name")

	err := h.departments.DeleteByName(c, name)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete department")
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			abort(c, newNotFoundError(services.ErrDepartmentNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "department deleted"})
}
