package controllers

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// The store interfaces below are the repository surface each controller
// depends on. The repositories package satisfies them.

type CourseStore interface {
	List(ctx context.Context, p helpers.Pagination) ([]models.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, input dto.CreateCourseRequest) (*models.Course, error)
	Patch(ctx context.Context, id uuid.UUID, input dto.PatchCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfessorStore interface {
	List(ctx context.Context, p helpers.Pagination) ([]models.Professor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error)
	Create(ctx context.Context, input dto.CreateProfessorRequest) (*models.Professor, error)
	Patch(ctx context.Context, id uuid.UUID, input dto.PatchProfessorRequest) (*models.Professor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewStore interface {
	List(ctx context.Context, p helpers.Pagination) ([]models.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Create(ctx context.Context, input dto.CreateReviewRequest) (*models.Review, error)
	Patch(ctx context.Context, id uuid.UUID, input dto.PatchReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ThreadStore interface {
	List(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, p helpers.Pagination) ([]models.Thread, error)
	Create(ctx context.Context, kind models.ReviewKind, reviewID uuid.UUID, input dto.CreateThreadRequest) (*models.Thread, error)
	Patch(ctx context.Context, id uuid.UUID, input dto.PatchThreadRequest) (*models.Thread, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DepartmentStore interface {
	List(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int) (*models.Department, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DocumentStore is satisfied by every filestorage backend.
type DocumentStore = filestorage.DocumentStore
