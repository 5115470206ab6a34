package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hrmanager/internal/models"
	"hrmanager/internal/services"
)

func newTaskTestRouter(tasks *taskServiceMock, departments *departmentServiceMock) *gin.Engine {
	handler := New(zerolog.Nop(), nil, nil, departments, nil, tasks)
	router := gin.New()
	router.POST("/departments/:name/tasks", handler.HandleCreateTask)
	router.GET("/departments/:name/tasks", handler.HandleGetTasks)
	router.PATCH("/departments/:name/tasks/:id", handler.HandleUpdateTask)
	return router
}

func TestHandleCreateTask_Success(t *testing.T) {
	tasks := new(taskServiceMock)
	departments := new(departmentServiceMock)

	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	tasks.On("CreateTask", mock.Anything, services.CreateTaskParams{
		Title:          "Ship the release",
		Description:    "Cut and tag v2",
		DepartmentName: "Engineering",
	}).Return(&models.Task{
		ID:           "task-1",
		Title:        "Ship the release",
		Description:  "Cut and tag v2",
		DepartmentID: "dept-1",
		AssignedTo:   "e2",
		Status:       models.StatusPending,
		DueDate:      now.Add(7 * 24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil).Once()

	router := newTaskTestRouter(tasks, departments)

	body := `{"title":"Ship the release","description":"Cut and tag v2"}`
	req := httptest.NewRequest(http.MethodPost, "/departments/Engineering/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got taskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "task-1", got.ID)
	require.Equal(t, "dept-1", got.DepartmentID)
	require.Equal(t, "e2", got.AssignedTo)
	require.Equal(t, models.StatusPending, got.Status)
	tasks.AssertExpectations(t)
}

func TestHandleCreateTask_NoAssignableEmployee(t *testing.T) {
	tasks := new(taskServiceMock)
	departments := new(departmentServiceMock)

	tasks.On("CreateTask", mock.Anything, mock.Anything).
		Return(nil, services.ErrNoAssignableEmployee).Once()

	router := newTaskTestRouter(tasks, departments)

	body := `{"title":"Orphan"}`
	req := httptest.NewRequest(http.MethodPost, "/departments/Engineering/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"no assignable employee in department"}`, rec.Body.String())
}

func TestHandleCreateTask_UnknownDepartment(t *testing.T) {
	tasks := new(taskServiceMock)
	departments := new(departmentServiceMock)

	tasks.On("CreateTask", mock.Anything, mock.Anything).
		Return(nil, services.ErrDepartmentNotFound).Once()

	router := newTaskTestRouter(tasks, departments)

	body := `{"title":"Nope"}`
	req := httptest.NewRequest(http.MethodPost, "/departments/Ghosts/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetTasks_Success(t *testing.T) {
	tasks := new(taskServiceMock)
	departments := new(departmentServiceMock)

	departments.On("GetByName", mock.Anything, "Engineering").
		Return(&models.Department{ID: "dept-1", Name: "Engineering"}, nil).Once()
	tasks.On("GetTasksByDepartment", mock.Anything, "dept-1").Return([]*models.Task{
		{ID: "task-1", Title: "A", DepartmentID: "dept-1", AssignedTo: "e1", Status: models.StatusPending},
		{ID: "task-2", Title: "B", DepartmentID: "dept-1", AssignedTo: "e2", Status: models.StatusCompleted},
	}, nil).Once()

	router := newTaskTestRouter(tasks, departments)

	req := httptest.NewRequest(http.MethodGet, "/departments/Engineering/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []taskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "task-1", got[0].ID)
	require.Equal(t, "task-2", got[1].ID)
}

func TestHandleUpdateTask_InvalidStatusRejectedByBinding(t *testing.T) {
	tasks := new(taskServiceMock)
	departments := new(departmentServiceMock)

	departments.On("GetByName", mock.Anything, "Engineering").
		Return(&models.Department{ID: "dept-1", Name: "Engineering"}, nil).Once()

	router := newTaskTestRouter(tasks, departments)

	body := `{"status":"archived"}`
	req := httptest.NewRequest(http.MethodPatch, "/departments/Engineering/tasks/task-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	tasks.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}
