package services

import (
	"context"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

// EmployeeStore is the employee persistence used by the services.
type EmployeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetAll(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// AttendanceStore is the attendance persistence used by the services.
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	List(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error)
	CountByStatus(ctx context.Context, employeeID int64) ([]models.StatusCount, error)
}

// Services holds all the service instances
type Services struct {
	EmployeeService   *EmployeeService
	AttendanceService *AttendanceService
}

// NewServices wires the services on top of the repositories. m may be nil.
func NewServices(repos *repositories.Repositories, m *metrics.Metrics) *Services {
	return &Services{
		EmployeeService:   NewEmployeeService(repos.EmployeeRepository, m),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository, repos.EmployeeRepository, m),
	}
}
