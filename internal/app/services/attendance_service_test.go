package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
	"github.com/yigit/hrmslite/internal/pkg/report"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newAttendanceService(m *metrics.Metrics) (*services.AttendanceService, *mockAttendanceStore, *mockEmployeeStore) {
	attendance := new(mockAttendanceStore)
	employees := new(mockEmployeeStore)
	return services.NewAttendanceService(attendance, employees, m), attendance, employees
}

func TestAttendanceService_MarkAttendance(t *testing.T) {
	ctx := context.Background()
	mark := func() *models.Attendance {
		return &models.Attendance{EmployeeID: 1, Date: date("2024-03-01"), Status: models.StatusPresent}
	}

	t.Run("marked", func(t *testing.T) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc, attendance, _ := newAttendanceService(m)
		attendance.On("Create", ctx, mock.AnythingOfType("*models.Attendance")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Attendance).ID = 5
		}).Return(nil)

		got, err := svc.MarkAttendance(ctx, mark())
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.InDelta(t, 1, testutil.ToFloat64(m.AttendanceMarked.WithLabelValues("Present")), 0)
	})

	t.Run("unknown status is rejected before storage", func(t *testing.T) {
		svc, attendance, _ := newAttendanceService(nil)

		a := mark()
		a.Status = "Late"
		_, err := svc.MarkAttendance(ctx, a)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		attendance.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	for name, repoErr := range map[string]error{
		"missing employee":        repositories.ErrNotFound,
		"employee deleted midway": repositories.ErrEmployeeReferenceMissing,
	} {
		t.Run(name, func(t *testing.T) {
			svc, attendance, _ := newAttendanceService(nil)
			attendance.On("Create", ctx, mock.Anything).Return(repoErr)

			_, err := svc.MarkAttendance(ctx, mark())
			require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
			assert.Equal(t, "Employee not found", apperrors.Message(err, ""))
		})
	}

	t.Run("same day twice", func(t *testing.T) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc, attendance, _ := newAttendanceService(m)
		attendance.On("Create", ctx, mock.Anything).Return(repositories.ErrAttendanceAlreadyMarked)

		_, err := svc.MarkAttendance(ctx, mark())
		require.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "Attendance already recorded for this date", apperrors.Message(err, ""))
		assert.InDelta(t, 1, testutil.ToFloat64(m.Conflicts.WithLabelValues("attendance")), 0)
	})
}

func TestAttendanceService_GetAttendance(t *testing.T) {
	ctx := context.Background()
	from, to := date("2024-01-05"), date("2024-01-10")
	filter := models.AttendanceFilter{EmployeeID: 1, FromDate: &from, ToDate: &to}

	t.Run("listed", func(t *testing.T) {
		svc, attendance, employees := newAttendanceService(nil)
		employees.On("Exists", ctx, int64(1)).Return(true, nil)
		records := []*models.Attendance{{ID: 2, Date: to}, {ID: 1, Date: from}}
		attendance.On("List", ctx, filter).Return(records, nil)

		got, err := svc.GetAttendance(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc, attendance, employees := newAttendanceService(nil)
		employees.On("Exists", ctx, int64(1)).Return(false, nil)

		_, err := svc.GetAttendance(ctx, filter)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		attendance.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestAttendanceService_GetSummary(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		counts  []models.StatusCount
		present int64
		absent  int64
	}{
		{
			name:    "present twice absent once",
			counts:  []models.StatusCount{{Status: "Present", Count: 2}, {Status: "Absent", Count: 1}},
			present: 2,
			absent:  1,
		},
		{
			name: "no rows",
		},
		{
			name:    "unknown statuses are ignored",
			counts:  []models.StatusCount{{Status: "present", Count: 4}, {Status: "Absent", Count: 3}},
			present: 0,
			absent:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, attendance, employees := newAttendanceService(nil)
			employees.On("Exists", ctx, int64(1)).Return(true, nil)
			attendance.On("CountByStatus", ctx, int64(1)).Return(tt.counts, nil)

			summary, err := svc.GetSummary(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, &models.AttendanceSummary{EmployeeID: 1, TotalPresent: tt.present, TotalAbsent: tt.absent}, summary)
		})
	}

	t.Run("missing employee", func(t *testing.T) {
		svc, _, employees := newAttendanceService(nil)
		employees.On("Exists", ctx, int64(7)).Return(false, nil)

		_, err := svc.GetSummary(ctx, 7)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestAttendanceService_ExportAttendance(t *testing.T) {
	ctx := context.Background()
	filter := models.AttendanceFilter{EmployeeID: 1}
	employee := &models.Employee{ID: 1, EmployeeCode: "E1", FullName: "Ada", Department: "Eng"}

	t.Run("workbook", func(t *testing.T) {
		svc, attendance, employees := newAttendanceService(nil)
		employees.On("GetByID", ctx, int64(1)).Return(employee, nil)
		attendance.On("List", ctx, filter).Return([]*models.Attendance{
			{Date: date("2024-03-02"), Status: models.StatusPresent},
			{Date: date("2024-03-01"), Status: models.StatusPresent},
			{Date: date("2024-02-29"), Status: models.StatusAbsent},
		}, nil)

		buf, err := svc.ExportAttendance(ctx, filter)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		present, err := f.GetCellValue(report.SummarySheet, "B4")
		require.NoError(t, err)
		assert.Equal(t, "2", present)
		absent, err := f.GetCellValue(report.SummarySheet, "B5")
		require.NoError(t, err)
		assert.Equal(t, "1", absent)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc, _, employees := newAttendanceService(nil)
		employees.On("GetByID", ctx, int64(1)).Return(nil, repositories.ErrNotFound)

		_, err := svc.ExportAttendance(ctx, filter)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Equal(t, "Employee not found", apperrors.Message(err, ""))
	})

	t.Run("nothing in range", func(t *testing.T) {
		svc, attendance, employees := newAttendanceService(nil)
		employees.On("GetByID", ctx, int64(1)).Return(employee, nil)
		attendance.On("List", ctx, filter).Return([]*models.Attendance{}, nil)

		_, err := svc.ExportAttendance(ctx, filter)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Equal(t, "No attendance records to export", apperrors.Message(err, ""))
	})
}
