package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

// DepartmentController exposes the seeded departments read-only
type DepartmentController struct {
	departments DepartmentStore
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departments DepartmentStore) *DepartmentController {
	return &DepartmentController{departments: departments}
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Description Retrieves every department ordered by ID
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departments.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} models.Department "Department retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.BadRequest("invalid id format"))
		return
	}

	department, err := c.departments.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, department)
}
