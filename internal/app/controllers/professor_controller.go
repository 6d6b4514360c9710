package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professors ProfessorStore
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professors ProfessorStore) *ProfessorController {
	return &ProfessorController{professors: professors}
}

// ListProfessors returns one page of professors
// @Summary List professors
// @Tags professors
// @Produce json
// @Param page query int false "Page number (starts at 1)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Professor "Professors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) ListProfessors(ctx *gin.Context) {
	p, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	professors, err := c.professors.List(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// GetProfessor retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID (UUID)"
// @Success 200 {object} models.Professor "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	professor, err := c.professors.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} models.Professor "Professor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := middleware.BindJSON(ctx, &req, "create professor"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	professor, err := c.professors.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, professor)
}

// PatchProfessor updates the given fields of a professor
// @Summary Update a professor
// @Description A tags array replaces the whole tag set; an empty array clears it
// @Tags professors
// @Accept json
// @Produce json
// @Param id path string true "Professor ID (UUID)"
// @Param request body dto.PatchProfessorRequest true "Fields to change"
// @Success 200 {object} models.Professor "Professor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [patch]
func (c *ProfessorController) PatchProfessor(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PatchProfessorRequest
	if err := middleware.BindJSON(ctx, &req, "patch professor"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	professor, err := c.professors.Patch(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// DeleteProfessor deletes a professor together with their reviews
// @Summary Delete a professor
// @Tags professors
// @Param id path string true "Professor ID (UUID)"
// @Success 204 "Professor deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.professors.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
