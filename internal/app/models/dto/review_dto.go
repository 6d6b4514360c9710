package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

// CreateReviewRequest represents review creation data. Exactly one of
// CourseID and ProfessorID must be given; that choice decides the review kind.
type CreateReviewRequest struct {
	StudentID   *uuid.UUID `json:"student_id"`
	CourseID    *uuid.UUID `json:"course_id"`
	ProfessorID *uuid.UUID `json:"professor_id"`
	Rating      int        `json:"rating" binding:"required,gte=1,lte=5"`
	ReviewText  string     `json:"review_text" binding:"required,max=2000"`
	Tags        []string   `json:"tags" binding:"omitempty,unique,dive,reviewtag"`
}

// Kind resolves the review kind and checks the tags against its vocabulary.
func (r CreateReviewRequest) Kind() (models.ReviewKind, error) {
	var kind models.ReviewKind
	switch {
	case r.CourseID != nil && r.ProfessorID != nil:
		return "", apperrors.BadRequest("exactly one of course_id or professor_id is required")
	case r.CourseID != nil:
		kind = models.ReviewKindCourse
	case r.ProfessorID != nil:
		kind = models.ReviewKindProfessor
	default:
		return "", apperrors.BadRequest("exactly one of course_id or professor_id is required")
	}

	if !models.ValidReviewTags(kind, r.Tags) {
		return "", apperrors.BadRequest("tags do not match the " + string(kind) + " review vocabulary")
	}
	return kind, nil
}

// TargetID returns whichever of CourseID and ProfessorID is set.
func (r CreateReviewRequest) TargetID() uuid.UUID {
	if r.CourseID != nil {
		return *r.CourseID
	}
	if r.ProfessorID != nil {
		return *r.ProfessorID
	}
	return uuid.Nil
}

// PatchReviewRequest carries the mutable child fields of a review.
type PatchReviewRequest struct {
	Rating     *int      `json:"rating" binding:"omitempty,gte=1,lte=5"`
	ReviewText *string   `json:"review_text" binding:"omitempty,min=1,max=2000"`
	Tags       *[]string `json:"tags" binding:"omitempty,unique,dive,reviewtag"`
}

func (r PatchReviewRequest) IsEmpty() bool {
	return r.Rating == nil && r.ReviewText == nil && r.Tags == nil
}
