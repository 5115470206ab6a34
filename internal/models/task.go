package models

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID           string
	Title        string
	Description  string
	DepartmentID string
	AssignedTo   string
	Status       string
	DueDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
