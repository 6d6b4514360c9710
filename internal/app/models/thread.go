package models

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a discussion entry attached to one review.
type Thread struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	ReviewID  uuid.UUID `json:"review_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
