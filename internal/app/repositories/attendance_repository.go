package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/db"
	"github.com/yigit/hrmslite/internal/pkg/dberrors"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

// Attendance error types
var (
	// ErrAttendanceAlreadyMarked is returned when the employee already has a record for the date.
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this date")
	// ErrEmployeeReferenceMissing is returned when the referenced employee vanished before the insert.
	ErrEmployeeReferenceMissing = errors.New("referenced employee does not exist")
)

var attendanceColumns = []string{"id", "employee_id", "date", "status"}

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db      Database
	sb      squirrel.StatementBuilderType
	metrics *metrics.Metrics
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db Database, m *metrics.Metrics) *AttendanceRepository {
	return &AttendanceRepository{
		db:      db,
		sb:      statementBuilder(),
		metrics: m,
	}
}

// Create records attendance for one employee and date. The employee lookup and
// the insert share a transaction; a failed insert leaves nothing behind.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	defer r.metrics.ObserveQuery("attendance_create", time.Now())

	sql, args, err := r.sb.Insert("attendance").
		Columns("employee_id", "date", "status").
		Values(attendance.EmployeeID, attendance.Date, string(attendance.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create attendance query: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := employeeExists(ctx, tx, r.sb, attendance.EmployeeID)
		if err != nil {
			return fmt.Errorf("error checking employee existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&attendance.ID); err != nil {
			switch {
			case dberrors.IsDuplicateConstraintError(err, constraintAttendanceDay):
				return ErrAttendanceAlreadyMarked
			case dberrors.IsForeignKeyError(err):
				return ErrEmployeeReferenceMissing
			}
			return fmt.Errorf("error creating attendance: %w", err)
		}
		return nil
	})
}

// List returns the attendance of one employee within the filter's inclusive
// date bounds, newest first.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error) {
	defer r.metrics.ObserveQuery("attendance_list", time.Now())

	where := squirrel.And{squirrel.Eq{"employee_id": filter.EmployeeID}}
	if filter.FromDate != nil {
		where = append(where, squirrel.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, squirrel.LtOrEq{"date": *filter.ToDate})
	}

	sql, args, err := r.sb.Select(attendanceColumns...).
		From("attendance").
		Where(where).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		var (
			a      models.Attendance
			status string
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &status); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		a.Status = models.AttendanceStatus(status)
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// CountByStatus returns the number of attendance rows per status for one employee.
func (r *AttendanceRepository) CountByStatus(ctx context.Context, employeeID int64) ([]models.StatusCount, error) {
	defer r.metrics.ObserveQuery("attendance_summary", time.Now())

	sql, args, err := r.sb.Select("status", "COUNT(id)").
		From("attendance").
		Where(squirrel.Eq{"employee_id": employeeID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance summary query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance summary: %w", err)
	}
	defer rows.Close()

	var counts []models.StatusCount
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning attendance summary row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance summary rows: %w", err)
	}

	return counts, nil
}
