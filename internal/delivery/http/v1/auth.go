package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/models"
	"hrmanager/internal/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Employee  employeeResponse `json:"employee"`
}

type employeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DepartmentID string    `json:"department_id"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Position     string    `json:"position,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newEmployeeResponse(employee *models.Employee) employeeResponse {
	return employeeResponse{
		ID:           employee.ID,
		Name:         employee.Name,
		Email:        employee.Email,
		Role:         employee.Role,
		DepartmentID: employee.DepartmentID,
		Phone:        employee.Phone,
		Address:      employee.Address,
		Position:     employee.Position,
		CreatedAt:    employee.CreatedAt,
		UpdatedAt:    employee.UpdatedAt,
	}
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("login request")

	result, err := h.auth.Login(c, services.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound),
			errors.Is(err, services.ErrPasswordMismatch):
			abort(c, newUnauthorizedError("invalid credentials"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.TokenExpiresAt,
		Employee:  newEmployeeResponse(result.Employee),
	})
}

type registerRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,min=6,max=255"`
	Role       string `json:"role" binding:"omitempty,oneof=admin employee"`
	Department string `json:"department" binding:"required,max=255"`
	Phone      string `json:"phone" binding:"omitempty,max=32"`
	Address    string `json:"address" binding:"omitempty,max=255"`
	Position   string `json:"position" binding:"omitempty,max=255"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("register request")

	if req.Role == "" {
		req.Role = models.RoleEmployee
	}

	employee, err := h.auth.Register(c, services.RegisterParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		DepartmentName: req.Department,
		Phone:          req.Phone,
		Address:        req.Address,
		Position:       req.Position,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register employee")
		switch {
		case errors.Is(err, services.ErrEmployeeAlreadyExists):
			abort(c, newConflictError(services.ErrEmployeeAlreadyExists.Error()))
		case errors.Is(err, services.ErrDepartmentNotFound):
			abort(c, newNotFoundError(services.ErrDepartmentNotFound.Error()))
		case errors.Is(err, services.ErrInvalidRole):
			abort(c, newBadRequestError(services.ErrInvalidRole.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, newEmployeeResponse(employee))
}

func (h *handlerImpl) HandleGetProfile(c *gin.Context) {
	employeeID, ok := getStringFromContext(c, employeeIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no employee id found in context")
		abort(c, newStatusTextError(http.StatusUnauthorized))
		return
	}

	employee, err := h.auth.GetProfile(c, employeeID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get profile")
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
