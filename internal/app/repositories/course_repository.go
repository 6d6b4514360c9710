package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.Pool
}

func NewCourseRepository(pool db.Pool) *CourseRepository {
	return &CourseRepository{db: pool}
}

// courseView selects the public course shape, department name included,
// from a courses relation aliased as c.
func courseView(from string) squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.name", "d.id", "d.name", "c.course_code", "c.description",
		"c.num_credits", "c.lecture_type", "c.created_at", "c.updated_at",
	).From(from).Join("departments d ON d.id = c.department_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Department.ID,
		&c.Department.Name,
		&c.CourseCode,
		&c.Description,
		&c.NumCredits,
		&c.LectureType,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns one page of courses, newest first.
func (r *CourseRepository) List(ctx context.Context, p helpers.Pagination) ([]models.Course, error) {
	offset, limit := helpers.CalculateOffsetLimit(p)
	query, args, err := courseView("courses c").
		OrderBy("c.created_at DESC", "c.id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build courses query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list courses")
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, storageError(ctx, err, "failed to scan course")
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "failed to list courses")
	}

	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query, args, err := courseView("courses c").Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build course query")
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("course", "id", id.String())
		}
		return nil, storageError(ctx, err, "failed to retrieve course")
	}
	return course, nil
}

// Create inserts a course and returns it joined with its department in the
// same statement.
func (r *CourseRepository) Create(ctx context.Context, input dto.CreateCourseRequest) (*models.Course, error) {
	insert, insertArgs, err := squirrel.Insert("courses").
		Columns("name", "department_id", "course_code", "description", "num_credits", "lecture_type").
		Values(input.Name, input.DepartmentID, input.CourseCode, input.Description, input.NumCredits, input.LectureType).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build course insert")
	}

	query, args, err := courseView("c").Prefix("WITH c AS ("+insert+")", insertArgs...).ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build course insert")
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, storageError(ctx, err, "failed to create course")
	}
	return course, nil
}

// Patch updates the provided fields and refreshes updated_at.
func (r *CourseRepository) Patch(ctx context.Context, id uuid.UUID, input dto.PatchCourseRequest) (*models.Course, error) {
	update := squirrel.Update("courses").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *")
	if input.Name != nil {
		update = update.Set("name", *input.Name)
	}
	if input.DepartmentID != nil {
		update = update.Set("department_id", *input.DepartmentID)
	}
	if input.CourseCode != nil {
		update = update.Set("course_code", *input.CourseCode)
	}
	if input.Description != nil {
		update = update.Set("description", *input.Description)
	}
	if input.NumCredits != nil {
		update = update.Set("num_credits", *input.NumCredits)
	}
	if input.LectureType != nil {
		update = update.Set("lecture_type", *input.LectureType)
	}

	updateSQL, updateArgs, err := update.ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build course update")
	}
	query, args, err := courseView("c").Prefix("WITH c AS ("+updateSQL+")", updateArgs...).ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build course update")
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("course", "id", id.String())
		}
		return nil, storageError(ctx, err, "failed to update course")
	}
	return course, nil
}

// Delete removes the course together with its reviews. Review children and
// threads follow through ON DELETE CASCADE. Deleting an absent id succeeds.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockRow(ctx, tx, "courses", id); err != nil {
			return err
		}

		reviews, reviewArgs, err := psql.Delete("reviews").
			Where("id IN (SELECT review_id FROM course_reviews WHERE course_id = ?)", id).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, reviews, reviewArgs...); err != nil {
			return err
		}

		course, courseArgs, err := psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, course, courseArgs...)
		return err
	})
	if err != nil {
		return storageError(ctx, err, "failed to delete course")
	}
	return nil
}
