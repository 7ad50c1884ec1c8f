package dto

import (
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

// MarkAttendanceRequest represents an attendance mark. EmployeeID is a pointer
// so that a missing id is told apart from zero, which is a valid lookup.
type MarkAttendanceRequest struct {
	EmployeeID *int64 `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

// AttendanceQuery holds the query string of attendance listing and export
type AttendanceQuery struct {
	EmployeeID *int64 `form:"employee_id" binding:"required"`
	FromDate   string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate     string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts the query into a repository filter. The employee id and
// dates are assumed to be validated by binding already.
func (q AttendanceQuery) ToFilter() (models.AttendanceFilter, error) {
	filter := models.AttendanceFilter{EmployeeID: *q.EmployeeID}

	from, err := helpers.ParseOptionalDate(q.FromDate)
	if err != nil {
		return filter, err
	}
	to, err := helpers.ParseOptionalDate(q.ToDate)
	if err != nil {
		return filter, err
	}

	filter.FromDate = from
	filter.ToDate = to
	return filter, nil
}

// SummaryQuery holds the query string of the attendance summary
type SummaryQuery struct {
	EmployeeID *int64 `form:"employee_id" binding:"required"`
}

// AttendanceResponse represents an attendance record as returned by the API
type AttendanceResponse struct {
	ID         int64  `json:"id" example:"1"`
	EmployeeID int64  `json:"employee_id" example:"1"`
	Date       string `json:"date" example:"2024-03-01"`
	Status     string `json:"status" example:"Present" enums:"Present,Absent"`
}

// NewAttendanceResponse maps an attendance model to its response shape
func NewAttendanceResponse(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       helpers.FormatDate(a.Date),
		Status:     string(a.Status),
	}
}

// NewAttendanceListResponse maps a list of records, never returning nil
func NewAttendanceListResponse(records []*models.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}
