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

// reviewChild describes the table holding one review kind's payload.
type reviewChild struct {
	table        string
	targetColumn string
}

var reviewChildren = map[models.ReviewKind]reviewChild{
	models.ReviewKindCourse:    {table: "course_reviews", targetColumn: "course_id"},
	models.ReviewKindProfessor: {table: "professor_reviews", targetColumn: "professor_id"},
}

// reviewProbeOrder is the order in which child tables are searched for an id.
var reviewProbeOrder = []models.ReviewKind{models.ReviewKindCourse, models.ReviewKindProfessor}

// ReviewRepository stores reviews as a parent row in reviews plus exactly one
// row in course_reviews or professor_reviews sharing its id.
type ReviewRepository struct {
	db db.Pool
}

func NewReviewRepository(pool db.Pool) *ReviewRepository {
	return &ReviewRepository{db: pool}
}

// reviewView joins the parent with the child table of kind.
func reviewView(kind models.ReviewKind) squirrel.SelectBuilder {
	child := reviewChildren[kind]
	return psql.Select(
		"r.id", "r.student_id", "ch."+child.targetColumn, "ch.rating",
		"ch.review_text", "ch.tags", "r.created_at", "r.updated_at",
	).From("reviews r").Join(child.table + " ch ON ch.review_id = r.id")
}

func scanReview(row pgx.Row, kind models.ReviewKind) (*models.Review, error) {
	review := models.Review{Kind: kind}
	var target uuid.UUID
	err := row.Scan(
		&review.ID,
		&review.StudentID,
		&target,
		&review.Rating,
		&review.ReviewText,
		&review.Tags,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	review.SetTarget(target)
	return &review, nil
}

// getByKind looks the id up in a single child table. It returns pgx.ErrNoRows
// when that table does not hold the id.
func getByKind(ctx context.Context, q db.Querier, kind models.ReviewKind, id uuid.UUID) (*models.Review, error) {
	query, args, err := reviewView(kind).Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanReview(q.QueryRow(ctx, query, args...), kind)
}

// List merges both review kinds into one page ordered by creation time.
func (r *ReviewRepository) List(ctx context.Context, p helpers.Pagination) ([]models.Review, error) {
	var parts []string
	for _, kind := range reviewProbeOrder {
		child := reviewChildren[kind]
		part, _, err := squirrel.Select(
			"r.id", "r.student_id", fmt.Sprintf("'%s' AS kind", kind), "ch."+child.targetColumn+" AS target_id",
			"ch.rating", "ch.review_text", "ch.tags", "r.created_at", "r.updated_at",
		).From("reviews r").Join(child.table + " ch ON ch.review_id = r.id").ToSql()
		if err != nil {
			return nil, storageError(ctx, err, "failed to build reviews query")
		}
		parts = append(parts, part)
	}

	offset, limit := helpers.CalculateOffsetLimit(p)
	query := fmt.Sprintf("%s UNION ALL %s ORDER BY created_at DESC, id LIMIT %d OFFSET %d",
		parts[0], parts[1], limit, offset)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list reviews")
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var (
			review models.Review
			target uuid.UUID
		)
		err := rows.Scan(
			&review.ID,
			&review.StudentID,
			&review.Kind,
			&target,
			&review.Rating,
			&review.ReviewText,
			&review.Tags,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, storageError(ctx, err, "failed to scan review")
		}
		review.SetTarget(target)
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "failed to list reviews")
	}

	return reviews, nil
}

// GetByID probes the course child first, then the professor child.
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	for _, kind := range reviewProbeOrder {
		review, err := getByKind(ctx, r.db, kind, id)
		if err == nil {
			return review, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, storageError(ctx, err, "failed to retrieve review")
		}
	}
	return nil, dberrors.NewNotFound("review", "id", id.String())
}

// Create inserts the parent row and the child row of the requested kind in
// one transaction. A failed child insert leaves no parent behind.
func (r *ReviewRepository) Create(ctx context.Context, input dto.CreateReviewRequest) (*models.Review, error) {
	kind, err := input.Kind()
	if err != nil {
		return nil, err
	}
	child := reviewChildren[kind]

	var created *models.Review
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		parentSQL, parentArgs, err := psql.Insert("reviews").
			Columns("student_id").
			Values(input.StudentID).
			Suffix("RETURNING id, student_id, created_at, updated_at").
			ToSql()
		if err != nil {
			return err
		}

		review := models.Review{Kind: kind}
		err = tx.QueryRow(ctx, parentSQL, parentArgs...).
			Scan(&review.ID, &review.StudentID, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			return err
		}

		childSQL, childArgs, err := psql.Insert(child.table).
			Columns("review_id", child.targetColumn, "rating", "review_text", "tags").
			Values(review.ID, input.TargetID(), input.Rating, input.ReviewText, input.Tags).
			Suffix("RETURNING rating, review_text, tags").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, childSQL, childArgs...).Scan(&review.Rating, &review.ReviewText, &review.Tags); err != nil {
			return err
		}

		review.SetTarget(input.TargetID())
		created = &review
		return nil
	})
	if err != nil {
		return nil, storageError(ctx, err, "failed to create review")
	}
	return created, nil
}

// reviewKindQuery reports which child table holds a review id.
const reviewKindQuery = `SELECT 'course' FROM course_reviews WHERE review_id = $1
	UNION ALL SELECT 'professor' FROM professor_reviews WHERE review_id = $1`

// Patch resolves the kind of id, checks new tags against that kind's
// vocabulary and updates the child row. Parent and child updated_at are
// refreshed together.
func (r *ReviewRepository) Patch(ctx context.Context, id uuid.UUID, input dto.PatchReviewRequest) (*models.Review, error) {
	var patched *models.Review
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var kind models.ReviewKind
		err := tx.QueryRow(ctx, reviewKindQuery, id).Scan(&kind)
		if errors.Is(err, pgx.ErrNoRows) {
			return dberrors.NewNotFound("review", "id", id.String())
		}
		if err != nil {
			return err
		}
		if input.Tags != nil && !models.ValidReviewTags(kind, *input.Tags) {
			return apperrors.BadRequest("tags do not match the " + string(kind) + " review vocabulary")
		}

		update := psql.Update(reviewChildren[kind].table).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"review_id": id})
		if input.Rating != nil {
			update = update.Set("rating", *input.Rating)
		}
		if input.ReviewText != nil {
			update = update.Set("review_text", *input.ReviewText)
		}
		if input.Tags != nil {
			update = update.Set("tags", *input.Tags)
		}

		query, args, err := update.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return dberrors.NewNotFound("review", "id", id.String())
		}

		touch, touchArgs, err := psql.Update("reviews").
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, touch, touchArgs...); err != nil {
			return err
		}

		patched, err = getByKind(ctx, tx, kind, id)
		return err
	})
	if err != nil {
		return nil, storageError(ctx, err, "failed to update review")
	}
	return patched, nil
}

// Delete removes the parent review; its child row and threads cascade.
// Unlike the other aggregates, deleting an absent review is reported.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("reviews").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return storageError(ctx, err, "failed to build review delete")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return storageError(ctx, err, "failed to delete review")
	}
	if tag.RowsAffected() == 0 {
		return dberrors.NewNotFound("review", "id", id.String())
	}
	return nil
}
