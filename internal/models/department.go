package models

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	// EmployeeIDs is an informational back-reference populated
	// on reads, never written back to the database.
	EmployeeIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
