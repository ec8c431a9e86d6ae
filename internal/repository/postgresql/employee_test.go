package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
)

var employeeRowColumns = []string{
	"id", "name", "email", "department_id", "base_salary", "allowances",
	"deductions", "points", "is_promoted", "password_hash",
	"must_change_password", "hire_date", "created_at", "updated_at",
	"department_name",
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, employee.EmployeeRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewEmployeeRepository(&database.DB{Pool: mock})
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	mock, repo := newMockRepo(t)

	deptID := "7b0f4c0e-6c2f-4a38-9a9b-0d2f4f1d8e11"
	deptName := "Engineering"
	hired := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(employeeRowColumns).AddRow(
		"emp-1", "Alice Wanjiru", "alicewanjiru@payflow.org", &deptID,
		decimal.NewFromInt(50000), decimal.NewFromInt(5000), decimal.NewFromInt(1000),
		12, true, "$2a$10$hash", false, hired, now, now, &deptName,
	)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.id = $1")).
		WithArgs("emp-1").
		WillReturnRows(rows)

	emp, err := repo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Alice Wanjiru", emp.Name)
	assert.Equal(t, "alicewanjiru@payflow.org", emp.Email)
	require.NotNil(t, emp.DepartmentID)
	assert.Equal(t, deptID, *emp.DepartmentID)
	require.NotNil(t, emp.DepartmentName)
	assert.Equal(t, "Engineering", *emp.DepartmentName)
	assert.True(t, emp.BaseSalary.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 12, emp.Points)
	assert.True(t, emp.IsPromoted)
	assert.False(t, emp.MustChangePassword)
	assert.True(t, emp.HireDate.Equal(hired))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.id = $1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByEmail_MatchesCaseInsensitively(t *testing.T) {
	mock, repo := newMockRepo(t)

	hired := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(employeeRowColumns).AddRow(
		"emp-1", "Alice Wanjiru", "alicewanjiru@payflow.org", (*string)(nil),
		decimal.NewFromInt(50000), decimal.Zero, decimal.Zero,
		0, false, "$2a$10$hash", true, hired, now, now, (*string)(nil),
	)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(e.email) = LOWER($1)")).
		WithArgs("Alicewanjiru@Payflow.org").
		WillReturnRows(rows)

	emp, err := repo.GetByEmail(context.Background(), "Alicewanjiru@Payflow.org")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)
	assert.Nil(t, emp.DepartmentID)
	assert.Nil(t, emp.DepartmentName)
	assert.True(t, emp.MustChangePassword)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_EmailExists(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("alicewanjiru@payflow.org", "").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "alicewanjiru@payflow.org", "")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_AddPoints(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET points = points + $2")).
		WithArgs("emp-1", 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.AddPoints(context.Background(), "emp-1", 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_AddPoints_UnknownEmployee(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET points = points + $2")).
		WithArgs("missing", 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AddPoints(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_CountByDepartment(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"department_id", "count"}).
		AddRow("dept-1", int64(4)).
		AddRow("dept-2", int64(1))

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY department_id")).
		WillReturnRows(rows)

	counts, err := repo.CountByDepartment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"dept-1": 4, "dept-2": 1}, counts)

	assert.NoError(t, mock.ExpectationsWereMet())
}
