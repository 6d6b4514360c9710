package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db db.Pool
}

func NewDepartmentRepository(pool db.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: pool}
}

// List returns every department ordered by id.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	query, args, err := psql.Select("id", "name").From("departments").OrderBy("id").ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build departments query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list departments")
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, storageError(ctx, err, "failed to scan department")
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "failed to list departments")
	}

	return departments, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*models.Department, error) {
	query, args, err := psql.Select("id", "name").From("departments").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build department query")
	}

	var d models.Department
	if err := r.db.QueryRow(ctx, query, args...).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("department", "id", strconv.Itoa(id))
		}
		return nil, storageError(ctx, err, "failed to retrieve department")
	}
	return &d, nil
}

// EnsureExists inserts a department unless one with the same name exists.
// It reports whether a row was inserted.
func (r *DepartmentRepository) EnsureExists(ctx context.Context, name string) (bool, error) {
	query, args, err := psql.Insert("departments").Columns("name").Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
	if err != nil {
		return false, storageError(ctx, err, "failed to build department insert")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, storageError(ctx, err, "failed to create department")
	}
	return tag.RowsAffected() == 1, nil
}
