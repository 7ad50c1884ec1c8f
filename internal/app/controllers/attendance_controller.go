package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/middleware"
	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AttendanceService is the attendance behaviour the controller depends on.
type AttendanceService interface {
	MarkAttendance(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	GetAttendance(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error)
	GetSummary(ctx context.Context, employeeID int64) (*models.AttendanceSummary, error)
	ExportAttendance(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error)
}

// AttendanceController handles attendance-related operations
type AttendanceController struct {
	attendanceService AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkAttendance records the attendance of an employee for one day
// @Summary Mark attendance
// @Description Records Present or Absent for an employee on a date. Each employee can be marked once per date.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 201 {object} dto.AttendanceResponse "Attendance marked successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded for this date"
// @Failure 422 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		middleware.HandleInvalidParam(ctx, "date", "date must be a date in YYYY-MM-DD format")
		return
	}

	attendance, err := c.attendanceService.MarkAttendance(ctx, &models.Attendance{
		EmployeeID: *req.EmployeeID,
		Date:       date,
		Status:     models.AttendanceStatus(req.Status),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAttendanceResponse(attendance))
}

// GetAttendance lists the attendance of an employee
// @Summary List attendance
// @Description Lists the attendance of an employee, newest first. Both date bounds are inclusive.
// @Tags attendance
// @Produce json
// @Param employee_id query int true "Employee ID"
// @Param from_date query string false "First date (YYYY-MM-DD)"
// @Param to_date query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} dto.AttendanceResponse "Attendance retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	filter, ok := bindAttendanceFilter(ctx)
	if !ok {
		return
	}

	records, err := c.attendanceService.GetAttendance(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAttendanceListResponse(records))
}

// GetSummary returns the attendance totals of an employee
// @Summary Attendance summary
// @Tags attendance
// @Produce json
// @Param employee_id query int true "Employee ID"
// @Success 200 {object} models.AttendanceSummary "Summary retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/summary [get]
func (c *AttendanceController) GetSummary(ctx *gin.Context) {
	var query dto.SummaryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	summary, err := c.attendanceService.GetSummary(ctx, *query.EmployeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// ExportAttendance downloads the attendance of an employee as an Excel workbook
// @Summary Export attendance
// @Tags attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employee_id query int true "Employee ID"
// @Param from_date query string false "First date (YYYY-MM-DD)"
// @Param to_date query string false "Last date (YYYY-MM-DD)"
// @Success 200 {file} file "Attendance workbook"
// @Failure 404 {object} dto.ErrorResponse "Employee not found or nothing to export"
// @Failure 422 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/export [get]
func (c *AttendanceController) ExportAttendance(ctx *gin.Context) {
	filter, ok := bindAttendanceFilter(ctx)
	if !ok {
		return
	}

	buf, err := c.attendanceService.ExportAttendance(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%d.xlsx"`, filter.EmployeeID))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func bindAttendanceFilter(ctx *gin.Context) (models.AttendanceFilter, bool) {
	var query dto.AttendanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(ctx, err)
		return models.AttendanceFilter{}, false
	}

	filter, err := query.ToFilter()
	if err != nil {
		middleware.HandleInvalidParam(ctx, "date", "dates must be in YYYY-MM-DD format")
		return models.AttendanceFilter{}, false
	}
	return filter, true
}
