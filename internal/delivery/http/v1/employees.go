package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/services"
)

func (h *handlerImpl) HandleGetEmployees(c *gin.Context) {
	departmentID := c.Query("department")
	if departmentID == "" {
		h.logger.Error().Msg("no department provided")
		abort(c, newBadRequestError("department query parameter required"))
		return
	}

	employees, err := h.employees.GetByDepartment(c, departmentID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get employees")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]employeeResponse, 0, len(employees))
	for _, employee := range employees {
		response = append(response, newEmployeeResponse(employee))
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetEmployee(c *gin.Context) {
	id := c.Param("id")

	employee, err := h.employees.GetByID(c, id)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get employee")
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			abort(c, newNotFoundError(services.ErrEmployeeNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newEmployeeResponse(employee))
}

type updateEmployeeRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=255"`
	DepartmentID *string `json:"department_id,omitempty"`
	Phone        *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Address      *string `json:"address,omitempty" binding:"omitempty,max=255"`
	Position     *string `json:"position,omitempty" binding:"omitempty,max=255"`
}

func (h *handlerImpl) HandleUpdateEmployee(c *gin.Context) {
	name := c.Param("id")

	var req updateEmployeeRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	employee, err := h.employees.UpdateByName(c, name, services.UpdateEmployeeParams{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Phone:        req.Phone,
		Address:      req.Address,
		Position:     req.Position,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update employee")
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			abort(c, newNotFoundError(services.ErrEmployeeNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newEmployeeResponse(employee))
}

func (h *handlerImpl) HandleDeleteEmployee(c *gin.Context) {
	name := c.Param("id")

	err := h.employees.DeleteByName(c, name)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete employee")
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			abort(c, newNotFoundError(services.ErrEmployeeNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
