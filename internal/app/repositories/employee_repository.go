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
	"github.com/yigit/hrmslite/internal/pkg/logger"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

// Employee error types
var (
	// ErrEmployeeAlreadyExists is returned when the employee code or email is taken.
	ErrEmployeeAlreadyExists = errors.New("employee with this code or email already exists")
)

var employeeColumns = []string{"id", "employee_id", "full_name", "email", "department", "created_at", "updated_at"}

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db      Database
	sb      squirrel.StatementBuilderType
	metrics *metrics.Metrics
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db Database, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{
		db:      db,
		sb:      statementBuilder(),
		metrics: m,
	}
}

// Create inserts employee and fills in its ID and timestamps. The lookup for an
// existing code or email runs in the same transaction as the insert; the unique
// constraints still decide races and yield the same ErrEmployeeAlreadyExists.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	defer r.metrics.ObserveQuery("employee_create", time.Now())

	existsSQL, existsArgs, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("employees").
		Where(squirrel.Or{
			squirrel.Eq{"employee_id": employee.EmployeeCode},
			squirrel.Eq{"email": employee.Email},
		}).
		Suffix(")").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build employee lookup query: %w", err)
	}

	now := time.Now().UTC()
	insertSQL, insertArgs, err := r.sb.Insert("employees").
		Columns("employee_id", "full_name", "email", "department", "created_at", "updated_at").
		Values(employee.EmployeeCode, employee.FullName, employee.Email, employee.Department, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create employee query: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, existsSQL, existsArgs...).Scan(&exists); err != nil {
			return fmt.Errorf("error checking employee uniqueness: %w", err)
		}
		if exists {
			return ErrEmployeeAlreadyExists
		}

		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&employee.ID); err != nil {
			if dberrors.IsDuplicateConstraintError(err, constraintEmployeeCode) ||
				dberrors.IsDuplicateConstraintError(err, constraintEmployeeEmail) {
				return ErrEmployeeAlreadyExists
			}
			return fmt.Errorf("error creating employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	employee.CreatedAt = now
	employee.UpdatedAt = now
	return nil
}

// GetByID retrieves an employee by internal ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	defer r.metrics.ObserveQuery("employee_get", time.Now())

	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by ID: %w", err)
	}

	return employee, nil
}

// GetAll retrieves all employees, most recently created first
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	defer r.metrics.ObserveQuery("employee_list", time.Now())

	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// Exists reports whether an employee with the given internal ID exists
func (r *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	defer r.metrics.ObserveQuery("employee_exists", time.Now())

	exists, err := employeeExists(ctx, r.db, r.sb, id)
	if err != nil {
		return false, fmt.Errorf("error checking employee existence: %w", err)
	}
	return exists, nil
}

// Delete removes an employee by internal ID. Attendance rows go with it through
// the ON DELETE CASCADE foreign key, within the same statement.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	defer r.metrics.ObserveQuery("employee_delete", time.Now())

	sql, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	if err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.Department,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}
