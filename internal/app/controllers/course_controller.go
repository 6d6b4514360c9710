package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courses CourseStore
}

// NewCourseController creates a new CourseController
func NewCourseController(courses CourseStore) *CourseController {
	return &CourseController{courses: courses}
}

// ListCourses returns one page of courses
// @Summary List courses
// @Description Returns courses ordered by creation time, newest first
// @Tags courses
// @Produce json
// @Param page query int false "Page number (starts at 1)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	p, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.courses.List(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} models.Course "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courses.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} models.Course "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown department"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := middleware.BindJSON(ctx, &req, "create course"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courses.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// PatchCourse updates the given fields of a course
// @Summary Update a course
// @Description Only the fields present in the body are changed
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID (UUID)"
// @Param request body dto.PatchCourseRequest true "Fields to change"
// @Success 200 {object} models.Course "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [patch]
func (c *CourseController) PatchCourse(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PatchCourseRequest
	if err := middleware.BindJSON(ctx, &req, "patch course"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courses.Patch(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse deletes a course together with its reviews and their threads
// @Summary Delete a course
// @Tags courses
// @Param id path string true "Course ID (UUID)"
// @Success 204 "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courses.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
