package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

const threadReturning = "RETURNING id, student_id, review_id, content, created_at, updated_at"

// ThreadRepository handles discussion threads attached to reviews.
type ThreadRepository struct {
	db db.Pool
}

func NewThreadRepository(pool db.Pool) *ThreadRepository {
	return &ThreadRepository{db: pool}
}

func scanThread(row pgx.Row) (*models.Thread, error) {
	var t models.Thread
	if err := row.Scan(&t.ID, &t.StudentID, &t.ReviewID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns one page of the threads under a review of the given kind,
// oldest first. A review of another kind yields an empty page.
func (r *ThreadRepository) List(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, p helpers.Pagination) ([]models.Thread, error) {
	child, ok := reviewChildren[kind]
	if !ok {
		return nil, apperrors.BadRequest("unknown review kind")
	}

	offset, limit := helpers.CalculateOffsetLimit(p)
	query, args, err := psql.Select(
		"t.id", "t.student_id", "t.review_id", "t.content", "t.created_at", "t.updated_at",
	).
		From("threads t").
		Join(child.table + " ch ON ch.review_id = t.review_id").
		Where(squirrel.Eq{"t.review_id": reviewID}).
		OrderBy("t.created_at", "t.id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build threads query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list threads")
	}
	defer rows.Close()

	threads := []models.Thread{}
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, storageError(ctx, err, "failed to scan thread")
		}
		threads = append(threads, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "failed to list threads")
	}

	return threads, nil
}

// Create attaches a thread to a review of the given kind. The insert selects
// from the kind's child table, so a missing review or a review of the other
// kind inserts nothing and is reported as an invalid reference.
func (r *ThreadRepository) Create(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, input dto.CreateThreadRequest) (*models.Thread, error) {
	child, ok := reviewChildren[kind]
	if !ok {
		return nil, apperrors.BadRequest("unknown review kind")
	}

	query := fmt.Sprintf(`INSERT INTO threads (review_id, student_id, content)
		SELECT ch.review_id, $2::uuid, $3::text FROM %s ch WHERE ch.review_id = $1
		%s`, child.table, threadReturning)

	thread, err := scanThread(r.db.QueryRow(ctx, query, reviewID, input.StudentID, input.Content))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.BadRequest("invalid reference")
		}
		return nil, storageError(ctx, err, "failed to create thread")
	}
	return thread, nil
}

func (r *ThreadRepository) Patch(ctx context.Context, id uuid.UUID, input dto.PatchThreadRequest) (*models.Thread, error) {
	update := psql.Update("threads").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(threadReturning)
	if input.Content != nil {
		update = update.Set("content", *input.Content)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build thread update")
	}

	thread, err := scanThread(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("thread", "id", id.String())
		}
		return nil, storageError(ctx, err, "failed to update thread")
	}
	return thread, nil
}

// Delete removes a thread. Deleting an absent id succeeds.
func (r *ThreadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("threads").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return storageError(ctx, err, "failed to build thread delete")
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return storageError(ctx, err, "failed to delete thread")
	}
	return nil
}
