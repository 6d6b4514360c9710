package dto

import "github.com/google/uuid"

// CreateThreadRequest represents a new discussion entry under a review.
type CreateThreadRequest struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Content   string    `json:"content" binding:"required,min=1,max=2000"`
}

type PatchThreadRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=2000"`
}

func (r PatchThreadRequest) IsEmpty() bool {
	return r.Content == nil
}
