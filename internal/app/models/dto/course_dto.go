package dto

import "github.com/yigit/courseboard/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name         string             `json:"name" binding:"required,max=255,trimmed"`
	DepartmentID int                `json:"department_id" binding:"required,gt=0"`
	CourseCode   int                `json:"course_code" binding:"required,gte=1000,lte=9999"`
	Description  string             `json:"description" binding:"required,max=1000"`
	NumCredits   int                `json:"num_credits" binding:"required,gte=1,lte=6"`
	LectureType  models.LectureType `json:"lecture_type" binding:"required,lecturetype"`
}

// PatchCourseRequest carries the course fields to change; nil means unchanged.
type PatchCourseRequest struct {
	Name         *string             `json:"name" binding:"omitempty,min=1,max=255,trimmed"`
	DepartmentID *int                `json:"department_id" binding:"omitempty,gt=0"`
	CourseCode   *int                `json:"course_code" binding:"omitempty,gte=1000,lte=9999"`
	Description  *string             `json:"description" binding:"omitempty,max=1000"`
	NumCredits   *int                `json:"num_credits" binding:"omitempty,gte=1,lte=6"`
	LectureType  *models.LectureType `json:"lecture_type" binding:"omitempty,lecturetype"`
}

func (r PatchCourseRequest) IsEmpty() bool {
	return r.Name == nil && r.DepartmentID == nil && r.CourseCode == nil &&
		r.Description == nil && r.NumCredits == nil && r.LectureType == nil
}
