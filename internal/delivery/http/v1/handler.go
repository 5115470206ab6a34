package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hrmanager/internal/services"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleGetProfile(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)
	HandleAdminMiddleware(c *gin.Context)

	HandleCreateDepartment(c *gin.Context)
	HandleGetDepartments(c *gin.Context)
	HandleGetDepartment(c *gin.Context)
	HandleUpdateDepartment(c *gin.Context)
	HandleDeleteDepartment(c *gin.Context)

	HandleGetEmployees(c *gin.Context)
	HandleGetEmployee(c *gin.Context)
	HandleUpdateEmployee(c *gin.Context)
	HandleDeleteEmployee(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger      zerolog.Logger
	tokens      services.TokenService
	auth        services.AuthService
	departments services.DepartmentService
	employees   services.EmployeeService
	tasks       services.TaskService
}

func New(
	logger zerolog.Logger,
	tokenService services.TokenService,
	authService services.AuthService,
	departmentService services.DepartmentService,
	employeeService services.EmployeeService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger:      logger,
		tokens:      tokenService,
		auth:        authService,
		departments: departmentService,
		employees:   employeeService,
		tasks:       taskService,
	}
}
