package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
)

var employeeCols = []string{"id", "employee_id", "full_name", "email", "department", "created_at", "updated_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleEmployee() *models.Employee {
	return &models.Employee{
		EmployeeCode: "E1",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Department:   "Engineering",
	}
}

func TestEmployeeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts and assigns id and timestamps", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").WithArgs("E1", "ada@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs("E1", "Ada Lovelace", "ada@example.com", "Engineering", pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		employee := sampleEmployee()
		require.NoError(t, repo.Create(ctx, employee))

		assert.Equal(t, int64(1), employee.ID)
		assert.False(t, employee.CreatedAt.IsZero())
		assert.Equal(t, time.UTC, employee.CreatedAt.Location())
		assert.Equal(t, employee.CreatedAt, employee.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing code or email is rejected before insert", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").WithArgs("E1", "ada@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.Create(ctx, sampleEmployee())
		require.ErrorIs(t, err, repositories.ErrEmployeeAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	for _, constraint := range []string{"uq_employees_employee_id", "uq_employees_email"} {
		t.Run("unique violation on "+constraint, func(t *testing.T) {
			mock := newMockPool(t)
			repo := repositories.NewEmployeeRepository(mock, nil)

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT EXISTS").WithArgs("E1", "ada@example.com").
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			mock.ExpectQuery("INSERT INTO employees").
				WithArgs("E1", "Ada Lovelace", "ada@example.com", "Engineering", pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraint})
			mock.ExpectRollback()

			err := repo.Create(ctx, sampleEmployee())
			require.ErrorIs(t, err, repositories.ErrEmployeeAlreadyExists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("other insert errors are wrapped", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").WithArgs("E1", "ada@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs("E1", "Ada Lovelace", "ada@example.com", "Engineering", pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Create(ctx, sampleEmployee())
		require.ErrorContains(t, err, "error creating employee")
		assert.NotErrorIs(t, err, repositories.ErrEmployeeAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectQuery("SELECT (.+) FROM employees WHERE id = \\$1").WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(employeeCols).
				AddRow(int64(1), "E1", "Ada Lovelace", "ada@example.com", "Engineering", created, created))

		employee, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "E1", employee.EmployeeCode)
		assert.Equal(t, created, employee.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectQuery("SELECT (.+) FROM employees").WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, repositories.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered newest first", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		newer := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM employees ORDER BY created_at DESC, id DESC").
			WillReturnRows(pgxmock.NewRows(employeeCols).
				AddRow(int64(2), "E2", "Grace Hopper", "grace@example.com", "Ops", newer, newer).
				AddRow(int64(1), "E1", "Ada Lovelace", "ada@example.com", "Engineering", older, older))

		employees, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, "E2", employees[0].EmployeeCode)
		assert.Equal(t, "E1", employees[1].EmployeeCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectQuery("SELECT (.+) FROM employees").
			WillReturnRows(pgxmock.NewRows(employeeCols))

		employees, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, employees)
		assert.Empty(t, employees)
	})
}

func TestEmployeeRepository_Exists(t *testing.T) {
	mock := newMockPool(t)
	repo := repositories.NewEmployeeRepository(mock, nil)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectExec("DELETE FROM employees WHERE id = \\$1").WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repositories.NewEmployeeRepository(mock, nil)

		mock.ExpectExec("DELETE FROM employees").WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		require.ErrorIs(t, repo.Delete(ctx, 5), repositories.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
