package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
	"github.com/yigit/hrmslite/internal/pkg/logger"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
	"github.com/yigit/hrmslite/internal/pkg/report"
)

// AttendanceService handles attendance-related operations
type AttendanceService struct {
	attendanceRepo AttendanceStore
	employeeRepo   EmployeeStore
	metrics        *metrics.Metrics
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo AttendanceStore, employeeRepo EmployeeStore, m *metrics.Metrics) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		metrics:        m,
	}
}

// MarkAttendance records the status of an employee for one day. A second mark
// for the same employee and day is rejected and the first one is kept.
func (s *AttendanceService) MarkAttendance(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	if !attendance.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("status must be one of: %s, %s", models.StatusPresent, models.StatusAbsent))
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrEmployeeReferenceMissing):
			return nil, apperrors.ErrEmployeeNotFound
		case errors.Is(err, repositories.ErrAttendanceAlreadyMarked):
			s.metrics.Conflict("attendance")
			return nil, apperrors.ErrAttendanceAlreadyMarked
		}
		return nil, fmt.Errorf("error marking attendance: %w", err)
	}

	s.metrics.AttendanceRecorded(string(attendance.Status))
	logger.Debug().
		Int64("employeeID", attendance.EmployeeID).
		Time("date", attendance.Date).
		Str("status", string(attendance.Status)).
		Msg("Attendance marked")

	return attendance, nil
}

// GetAttendance lists the attendance of an employee within the inclusive date
// range of filter, newest first. An inverted range yields no rows.
func (s *AttendanceService) GetAttendance(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error) {
	if err := s.requireEmployee(ctx, filter.EmployeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return records, nil
}

// GetSummary counts the Present and Absent days of an employee. Rows with any
// other status do not contribute.
func (s *AttendanceService) GetSummary(ctx context.Context, employeeID int64) (*models.AttendanceSummary, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error summarizing attendance: %w", err)
	}

	return summarize(employeeID, counts), nil
}

// ExportAttendance renders the attendance selected by filter as an Excel workbook.
func (s *AttendanceService) ExportAttendance(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error) {
	employee, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}

	rows := make([]report.AttendanceRow, 0, len(records))
	counts := map[string]int64{}
	for _, a := range records {
		rows = append(rows, report.AttendanceRow{Date: a.Date, Status: string(a.Status)})
		counts[string(a.Status)]++
	}

	statusCounts := make([]models.StatusCount, 0, len(counts))
	for status, n := range counts {
		statusCounts = append(statusCounts, models.StatusCount{Status: status, Count: n})
	}
	summary := summarize(employee.ID, statusCounts)

	buf, err := report.GenerateAttendanceReport(report.Employee{
		Code:       employee.EmployeeCode,
		FullName:   employee.FullName,
		Department: employee.Department,
	}, rows, summary.TotalPresent, summary.TotalAbsent)
	if err != nil {
		if errors.Is(err, report.ErrNoRows) {
			return nil, apperrors.ErrNoAttendanceToExport
		}
		return nil, fmt.Errorf("error generating attendance report: %w", err)
	}

	return buf, nil
}

func (s *AttendanceService) requireEmployee(ctx context.Context, employeeID int64) error {
	exists, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("error checking employee: %w", err)
	}
	if !exists {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// summarize folds per-status counts into the two tracked totals.
func summarize(employeeID int64, counts []models.StatusCount) *models.AttendanceSummary {
	summary := &models.AttendanceSummary{EmployeeID: employeeID}
	for _, c := range counts {
		switch models.AttendanceStatus(c.Status) {
		case models.StatusPresent:
			summary.TotalPresent += c.Count
		case models.StatusAbsent:
			summary.TotalAbsent += c.Count
		}
	}
	return summary
}
