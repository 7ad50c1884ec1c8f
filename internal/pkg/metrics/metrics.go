package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service: HTTP traffic, database
// latency and domain events. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec   // Requests by method, route and status
	HTTPDuration     *prometheus.HistogramVec // Request latency by method and route
	DBQueryDuration  *prometheus.HistogramVec // Query latency by query type
	EmployeesCreated prometheus.Counter       // Successful employee creations
	EmployeesDeleted prometheus.Counter       // Successful employee deletions
	AttendanceMarked *prometheus.CounterVec   // Marks by status
	Conflicts        *prometheus.CounterVec   // Rejected duplicates by resource
}

// NewMetrics creates a new Metrics instance registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: employee_create, attendance_list, ...
		EmployeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_created_total",
			Help: "Total number of created employees",
		}),
		EmployeesDeleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hrms_employees_deleted_total",
			Help: "Total number of deleted employees",
		}),
		AttendanceMarked: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_attendance_marked_total",
			Help: "Total number of attendance marks",
		}, []string{"status"}),
		Conflicts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_conflicts_total",
			Help: "Writes rejected by a uniqueness rule",
		}, []string{"resource"}), // resource: employee, attendance
	}
}

// ObserveQuery records the time elapsed since start for queryType.
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// EmployeeCreated counts a created employee.
func (m *Metrics) EmployeeCreated() {
	if m == nil {
		return
	}
	m.EmployeesCreated.Inc()
}

// EmployeeDeleted counts a deleted employee.
func (m *Metrics) EmployeeDeleted() {
	if m == nil {
		return
	}
	m.EmployeesDeleted.Inc()
}

// AttendanceRecorded counts a stored attendance mark.
func (m *Metrics) AttendanceRecorded(status string) {
	if m == nil {
		return
	}
	m.AttendanceMarked.WithLabelValues(status).Inc()
}

// Conflict counts a duplicate rejected for resource.
func (m *Metrics) Conflict(resource string) {
	if m == nil {
		return
	}
	m.Conflicts.WithLabelValues(resource).Inc()
}
