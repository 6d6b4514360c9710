package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is a course offered by a department.
type Course struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Department  Department  `json:"department"`
	CourseCode  int         `json:"course_code"`
	Description string      `json:"description"`
	NumCredits  int         `json:"num_credits"`
	LectureType LectureType `json:"lecture_type"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
