package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID string
	Phone        string
	Address      string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
