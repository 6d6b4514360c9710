package dto

import "github.com/yigit/courseboard/internal/app/models"

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	FirstName string             `json:"first_name" binding:"required,max=100,trimmed"`
	LastName  string             `json:"last_name" binding:"required,max=100,trimmed"`
	Tags      []models.CampusTag `json:"tags" binding:"omitempty,unique,dive,campustag"`
}

// PatchProfessorRequest carries the professor fields to change. A non-nil
// Tags pointer replaces the whole tag set.
type PatchProfessorRequest struct {
	FirstName *string             `json:"first_name" binding:"omitempty,min=1,max=100,trimmed"`
	LastName  *string             `json:"last_name" binding:"omitempty,min=1,max=100,trimmed"`
	Tags      *[]models.CampusTag `json:"tags" binding:"omitempty,unique,dive,campustag"`
}

func (r PatchProfessorRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Tags == nil
}
