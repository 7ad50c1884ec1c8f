package models

import "time"

// AttendanceStatus is the recorded state of an employee for one calendar day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// IsValid reports whether s is one of the recognised statuses.
func (s AttendanceStatus) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one employee's status on one date. (EmployeeID, Date) is unique.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     AttendanceStatus
}

// AttendanceFilter narrows an attendance query to an inclusive date range.
// Nil bounds are open.
type AttendanceFilter struct {
	EmployeeID int64
	FromDate   *time.Time
	ToDate     *time.Time
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status string
	Count  int64
}

// AttendanceSummary holds the per-employee status totals.
type AttendanceSummary struct {
	EmployeeID   int64 `json:"employee_id"`
	TotalPresent int64 `json:"total_present"`
	TotalAbsent  int64 `json:"total_absent"`
}
