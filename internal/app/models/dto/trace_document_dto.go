package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/courseboard/internal/app/models"
)

// TraceDocumentQuery identifies a trace document in form or query parameters.
type TraceDocumentQuery struct {
	DepartmentID int             `form:"department_id" binding:"required,gt=0"`
	CourseCode   int             `form:"course_code" binding:"required,gte=1000,lte=9999"`
	Semester     models.Semester `form:"semester" binding:"required,semester"`
	Year         int             `form:"year" binding:"required,gte=1900,lte=2100"`
	ProfessorID  string          `form:"professor_id" binding:"required,uuid"`
}

// Key converts the query into a storage key. ProfessorID must already be
// validated.
func (q TraceDocumentQuery) Key() models.TraceDocumentKey {
	return models.TraceDocumentKey{
		DepartmentID: q.DepartmentID,
		CourseCode:   q.CourseCode,
		Semester:     q.Semester,
		Year:         q.Year,
		ProfessorID:  uuid.MustParse(q.ProfessorID),
	}
}

// TraceDocumentResponse is returned after an upload.
type TraceDocumentResponse struct {
	Key string `json:"key" example:"trace-evaluations/3/1200/fall_2025/a1b2c3d4.pdf"`
}
