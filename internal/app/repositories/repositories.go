package repositories

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// psql builds statements with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	ProfessorRepository  *ProfessorRepository
	ReviewRepository     *ReviewRepository
	ThreadRepository     *ThreadRepository
}

// NewRepositories initializes all repositories over the same pool.
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		ProfessorRepository:  NewProfessorRepository(pool),
		ReviewRepository:     NewReviewRepository(pool),
		ThreadRepository:     NewThreadRepository(pool),
	}
}

// storageError is the single translation point for storage failures. The
// not-found signal passes through untouched; everything else is classified
// into the application taxonomy and logged.
func storageError(ctx context.Context, err error, op string) error {
	if dberrors.IsNotFound(err) {
		return err
	}

	translated := apperrors.Translate(err, op)
	event := logger.FromContext(ctx).Warn()
	if translated.Code >= http.StatusInternalServerError {
		event = logger.FromContext(ctx).Error()
	}
	event.Err(err).Str("operation", op).Int("status", translated.Code).Msg("Storage operation failed")

	return translated
}

// lockRow takes a row lock on table.id inside tx. Concurrent inserts that
// reference the row through a foreign key wait for tx or fail against it.
func lockRow(ctx context.Context, tx pgx.Tx, table string, id uuid.UUID) error {
	query, args, err := psql.Select("1").From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, query, args...)
	return err
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
