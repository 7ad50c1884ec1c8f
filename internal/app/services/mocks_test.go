package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/hrmslite/internal/app/models"
)

type mockEmployeeStore struct {
	mock.Mock
}

func (m *mockEmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *mockEmployeeStore) GetAll(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]*models.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployeeStore) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*models.Employee)
	return employee, args.Error(1)
}

func (m *mockEmployeeStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEmployeeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAttendanceStore struct {
	mock.Mock
}

func (m *mockAttendanceStore) Create(ctx context.Context, attendance *models.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *mockAttendanceStore) List(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]*models.Attendance)
	return records, args.Error(1)
}

func (m *mockAttendanceStore) CountByStatus(ctx context.Context, employeeID int64) ([]models.StatusCount, error) {
	args := m.Called(ctx, employeeID)
	counts, _ := args.Get(0).([]models.StatusCount)
	return counts, args.Error(1)
}
