package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
	"github.com/yigit/hrmslite/internal/pkg/logger"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo EmployeeStore
	metrics      *metrics.Metrics
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeStore, m *metrics.Metrics) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		metrics:      m,
	}
}

// CreateEmployee stores a new employee. Both the employee code and the email
// must be unused.
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, repositories.ErrEmployeeAlreadyExists) {
			s.metrics.Conflict("employee")
			return nil, apperrors.ErrEmployeeAlreadyExists
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	s.metrics.EmployeeCreated()
	logger.Info().
		Int64("id", employee.ID).
		Str("employeeCode", employee.EmployeeCode).
		Msg("Employee created")

	return employee, nil
}

// GetAllEmployees retrieves all employees, newest first
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeByID retrieves an employee by internal ID
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes an employee together with its attendance records
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}

	s.metrics.EmployeeDeleted()
	logger.Info().Int64("id", id).Msg("Employee deleted")
	return nil
}
