package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// ThreadController handles the discussion threads of one review kind. One
// instance is mounted under /course-reviews and one under /professor-reviews.
type ThreadController struct {
	threads ThreadStore
	kind    models.ReviewKind
}

// NewThreadController creates a ThreadController for reviews of kind
func NewThreadController(threads ThreadStore, kind models.ReviewKind) *ThreadController {
	return &ThreadController{threads: threads, kind: kind}
}

// ListThreads returns one page of threads under a review
// @Summary List threads of a review
// @Description Oldest first. Threads of a review of the other type are never returned
// @Tags threads
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Param page query int false "Page number (starts at 1)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Thread "Threads retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID or pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-reviews/{id}/threads [get]
// @Router /professor-reviews/{id}/threads [get]
func (c *ThreadController) ListThreads(ctx *gin.Context) {
	reviewID, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	p, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	threads, err := c.threads.List(ctx.Request.Context(), c.kind, reviewID, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, threads)
}

// CreateThread adds a thread under a review
// @Summary Create a thread
// @Tags threads
// @Accept json
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Param request body dto.CreateThreadRequest true "Thread content"
// @Success 201 {object} models.Thread "Thread created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or no such review of this type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-reviews/{id}/threads [post]
// @Router /professor-reviews/{id}/threads [post]
func (c *ThreadController) CreateThread(ctx *gin.Context) {
	reviewID, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateThreadRequest
	if err := middleware.BindJSON(ctx, &req, "create thread"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	thread, err := c.threads.Create(ctx.Request.Context(), c.kind, reviewID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, thread)
}

// PatchThread changes the content of a thread
// @Summary Update a thread
// @Tags threads
// @Accept json
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Param thread_id path string true "Thread ID (UUID)"
// @Param request body dto.PatchThreadRequest true "Fields to change"
// @Success 200 {object} models.Thread "Thread updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Thread not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-reviews/{id}/threads/{thread_id} [patch]
// @Router /professor-reviews/{id}/threads/{thread_id} [patch]
func (c *ThreadController) PatchThread(ctx *gin.Context) {
	if _, err := helpers.ParseUUIDParam(ctx, "id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	threadID, err := helpers.ParseUUIDParam(ctx, "thread_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PatchThreadRequest
	if err := middleware.BindJSON(ctx, &req, "patch thread"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	thread, err := c.threads.Patch(ctx.Request.Context(), threadID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, thread)
}

// DeleteThread removes a thread
// @Summary Delete a thread
// @Tags threads
// @Param id path string true "Review ID (UUID)"
// @Param thread_id path string true "Thread ID (UUID)"
// @Success 204 "Thread deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-reviews/{id}/threads/{thread_id} [delete]
// @Router /professor-reviews/{id}/threads/{thread_id} [delete]
func (c *ThreadController) DeleteThread(ctx *gin.Context) {
	if _, err := helpers.ParseUUIDParam(ctx, "id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	threadID, err := helpers.ParseUUIDParam(ctx, "thread_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.threads.Delete(ctx.Request.Context(), threadID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
