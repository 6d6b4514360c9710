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

var professorColumns = []string{"id", "first_name", "last_name", "tags", "created_at", "updated_at"}

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db db.Pool
}

func NewProfessorRepository(pool db.Pool) *ProfessorRepository {
	return &ProfessorRepository{db: pool}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var (
		p    models.Professor
		tags []string
	)
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Tags = models.CampusTagsFromStrings(tags)
	return &p, nil
}

func (r *ProfessorRepository) List(ctx context.Context, p helpers.Pagination) ([]models.Professor, error) {
	offset, limit := helpers.CalculateOffsetLimit(p)
	query, args, err := psql.Select(professorColumns...).
		From("professors").
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build professors query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError(ctx, err, "failed to list professors")
	}
	defer rows.Close()

	professors := []models.Professor{}
	for rows.Next() {
		prof, err := scanProfessor(rows)
		if err != nil {
			return nil, storageError(ctx, err, "failed to scan professor")
		}
		professors = append(professors, *prof)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, err, "failed to list professors")
	}

	return professors, nil
}

func (r *ProfessorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	query, args, err := psql.Select(professorColumns...).From("professors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build professor query")
	}

	prof, err := scanProfessor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("professor", "id", id.String())
		}
		return nil, storageError(ctx, err, "failed to retrieve professor")
	}
	return prof, nil
}

func (r *ProfessorRepository) Create(ctx context.Context, input dto.CreateProfessorRequest) (*models.Professor, error) {
	query, args, err := psql.Insert("professors").
		Columns("first_name", "last_name", "tags").
		Values(input.FirstName, input.LastName, models.CampusTagStrings(input.Tags)).
		Suffix("RETURNING " + joinColumns(professorColumns)).
		ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build professor insert")
	}

	prof, err := scanProfessor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, storageError(ctx, err, "failed to create professor")
	}
	return prof, nil
}

// Patch updates the provided fields. A provided tag list replaces the stored one.
func (r *ProfessorRepository) Patch(ctx context.Context, id uuid.UUID, input dto.PatchProfessorRequest) (*models.Professor, error) {
	update := psql.Update("professors").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(professorColumns))
	if input.FirstName != nil {
		update = update.Set("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		update = update.Set("last_name", *input.LastName)
	}
	if input.Tags != nil {
		tags := models.CampusTagStrings(*input.Tags)
		if tags == nil {
			tags = []string{}
		}
		update = update.Set("tags", tags)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, storageError(ctx, err, "failed to build professor update")
	}

	prof, err := scanProfessor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.NewNotFound("professor", "id", id.String())
		}
		return nil, storageError(ctx, err, "failed to update professor")
	}
	return prof, nil
}

// Delete removes the professor together with its reviews. Deleting an absent
// id succeeds.
func (r *ProfessorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockRow(ctx, tx, "professors", id); err != nil {
			return err
		}

		reviews, reviewArgs, err := psql.Delete("reviews").
			Where("id IN (SELECT review_id FROM professor_reviews WHERE professor_id = ?)", id).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, reviews, reviewArgs...); err != nil {
			return err
		}

		prof, profArgs, err := psql.Delete("professors").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, prof, profArgs...)
		return err
	})
	if err != nil {
		return storageError(ctx, err, "failed to delete professor")
	}
	return nil
}
