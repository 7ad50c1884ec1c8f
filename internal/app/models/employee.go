package models

import "time"

// Employee is a person on record, identified internally by ID and externally by
// EmployeeCode.
type Employee struct {
	ID           int64     `json:"id"`
	EmployeeCode string    `json:"employee_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
