package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is the merged view of a parent review and its single child row.
// Exactly one of CourseID and ProfessorID is set, matching Kind.
type Review struct {
	ID          uuid.UUID  `json:"id"`
	Kind        ReviewKind `json:"type"`
	StudentID   *uuid.UUID `json:"student_id"`
	CourseID    *uuid.UUID `json:"course_id,omitempty"`
	ProfessorID *uuid.UUID `json:"professor_id,omitempty"`
	Rating      int        `json:"rating"`
	ReviewText  string     `json:"review_text"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SetTarget records the reviewed entity according to Kind.
func (r *Review) SetTarget(id uuid.UUID) {
	target := id
	switch r.Kind {
	case ReviewKindCourse:
		r.CourseID, r.ProfessorID = &target, nil
	case ReviewKindProfessor:
		r.CourseID, r.ProfessorID = nil, &target
	}
}

// TargetID returns the reviewed course or professor id.
func (r *Review) TargetID() uuid.UUID {
	if r.CourseID != nil {
		return *r.CourseID
	}
	if r.ProfessorID != nil {
		return *r.ProfessorID
	}
	return uuid.Nil
}
