package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)

	m.EmployeeCreated()
	m.EmployeeCreated()
	m.EmployeeDeleted()
	m.AttendanceRecorded("Present")
	m.Conflict("attendance")
	m.ObserveRequest("GET", "/api/employees", "200", 5*time.Millisecond)
	m.ObserveQuery("employee_list", time.Now())

	assert.InDelta(t, 2, testutil.ToFloat64(m.EmployeesCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EmployeesDeleted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AttendanceMarked.WithLabelValues("Present")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Conflicts.WithLabelValues("attendance")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/employees", "200")), 0)

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.EmployeeCreated()
		m.EmployeeDeleted()
		m.AttendanceRecorded("Absent")
		m.Conflict("employee")
		m.ObserveRequest("POST", "/api/attendance", "201", time.Millisecond)
		m.ObserveQuery("attendance_create", time.Now())
	})
}
