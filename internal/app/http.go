package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/config"
	v1 "hrmanager/internal/delivery/http/v1"
	"hrmanager/internal/services"
	"hrmanager/internal/storage"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT

	departmentStore := storage.NewDepartmentStore(globalLogger, globalPostgresPool)
	employeeStore := storage.NewEmployeeStore(globalLogger, globalPostgresPool)
	taskStore := storage.NewTaskStore(globalLogger, globalPostgresPool)

	tokenService := services.NewTokenService(
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
		jwtCfg.TokenTTL,
	)
	authService := services.NewAuthService(globalLogger, employeeStore, departmentStore, tokenService)
	departmentService := services.NewDepartmentService(globalLogger, departmentStore, employeeStore)
	employeeService := services.NewEmployeeService(globalLogger, employeeStore)
	taskService := services.NewTaskService(globalLogger, taskStore, employeeStore, departmentStore)

	v1Handler := v1.New(
		globalLogger,
		tokenService,
		authService,
		departmentService,
		employeeService,
		taskService,
	)

	router = router.Group("/api/v1")
	router.GET("/health", handleHealth)

	authRouter := router.Group("/auth")
	authRouter.POST("/login", v1Handler.HandleLogin)
	authRouter.POST("/register", v1Handler.HandleAdminMiddleware, v1Handler.HandleRegister)
	authRouter.GET("/me", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetProfile)

	departmentRouter := router.Group("/departments")
	departmentRouter.GET("", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetDepartments)
	departmentRouter.POST("", v1Handler.HandleAdminMiddleware, v1Handler.HandleCreateDepartment)
	departmentRouter.GET("/:name", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetDepartment)
	departmentRouter.PUT("/:name", v1Handler.HandleAdminMiddleware, v1Handler.HandleUpdateDepartment)
	departmentRouter.DELETE("/:name", v1Handler.HandleAdminMiddleware, v1Handler.HandleDeleteDepartment)

	taskRouter := departmentRouter.Group("/:name/tasks")
	taskRouter.GET("", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetTasks)
	taskRouter.POST("", v1Handler.HandleAuthMiddleware, v1Handler.HandleCreateTask)
	taskRouter.GET("/:id", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetTask)
	taskRouter.PATCH("/:id", v1Handler.HandleAuthMiddleware, v1Handler.HandleUpdateTask)
	taskRouter.DELETE("/:id", v1Handler.HandleAdminMiddleware, v1Handler.HandleDeleteTask)

	employeeRouter := router.Group("/employees")
	employeeRouter.GET("", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetEmployees)
	employeeRouter.GET("/:id", v1Handler.HandleAuthMiddleware, v1Handler.HandleGetEmployee)
	employeeRouter.PUT("/:id", v1Handler.HandleAdminMiddleware, v1Handler.HandleUpdateEmployee)
	employeeRouter.DELETE("/:id", v1Handler.HandleAdminMiddleware, v1Handler.HandleDeleteEmployee)
}

func handleHealth(c *gin.Context) {
	err := globalPostgresPool.Ping(c)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
