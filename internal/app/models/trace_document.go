package models

import "github.com/google/uuid"

// TraceDocumentKey identifies one course evaluation report.
type TraceDocumentKey struct {
	DepartmentID int
	CourseCode   int
	Semester     Semester
	Year         int
	ProfessorID  uuid.UUID
}
