package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
)

func TestDepartmentRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM departments ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(1, "CS").AddRow(2, "MATH"))

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Department{{ID: 1, Name: "CS"}, {ID: 2, Name: "MATH"}}, departments)
}

func TestDepartmentRepository_ListEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery("SELECT id, name FROM departments").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}

func TestDepartmentRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM departments WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(3, "PHYS"))

	department, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "PHYS", department.Name)
}

func TestDepartmentRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery("SELECT id, name FROM departments").
		WithArgs(42).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetByID(context.Background(), 42)

	var notFound *dberrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "department", notFound.Entity)
	assert.Equal(t, "42", notFound.Value)
}

func TestDepartmentRepository_EnsureExists(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)
	insert := regexp.QuoteMeta("INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING")

	mock.ExpectExec(insert).WithArgs("CS").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(insert).WithArgs("CS").WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.EnsureExists(context.Background(), "CS")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.EnsureExists(context.Background(), "CS")
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestDepartmentRepository_ListQueryFails(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery("SELECT id, name FROM departments").
		WillReturnError(errors.New("dial tcp: connection refused"))

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.EqualError(t, err, "database connection refused")
}
