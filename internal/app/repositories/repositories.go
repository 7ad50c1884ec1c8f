package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
)

// Shared repository errors
var (
	// ErrNotFound is returned when the requested row, or the employee a row refers to, does not exist.
	ErrNotFound = errors.New("record not found")
)

// Constraint names declared by the schema migrations.
const (
	constraintEmployeeCode  = "uq_employees_employee_id"
	constraintEmployeeEmail = "uq_employees_email"
	constraintAttendanceDay = "uq_attendance_employee_date"
)

// Database is the subset of pgxpool.Pool used by the repositories, so tests can
// substitute a pgxmock pool.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowQuerier is satisfied by both Database and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository   *EmployeeRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories. m may be nil.
func NewRepositories(db Database, m *metrics.Metrics) *Repositories {
	return &Repositories{
		EmployeeRepository:   NewEmployeeRepository(db, m),
		AttendanceRepository: NewAttendanceRepository(db, m),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// employeeExists reports whether an employee with the given internal id exists.
func employeeExists(ctx context.Context, q rowQuerier, sb squirrel.StatementBuilderType, id int64) (bool, error) {
	sql, args, err := sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
