package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/helpers"
)

// ReviewController handles course and professor reviews
type ReviewController struct {
	reviews ReviewStore
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviews ReviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// ListReviews returns one page of reviews of both kinds
// @Summary List reviews
// @Description Course and professor reviews merged, newest first. The type field tells them apart
// @Tags reviews
// @Produce json
// @Param page query int false "Page number (starts at 1)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Review "Reviews retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	p, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reviews, err := c.reviews.List(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// GetReview retrieves a review by ID
// @Summary Get review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} models.Review "Review retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [get]
func (c *ReviewController) GetReview(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	review, err := c.reviews.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// CreateReview handles review creation
// @Summary Create a review
// @Description Exactly one of course_id and professor_id must be set; it decides the review type and the allowed tags
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review information"
// @Success 201 {object} models.Review "Review created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown course/professor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if err := middleware.BindJSON(ctx, &req, "create review"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if _, err := req.Kind(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	review, err := c.reviews.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// PatchReview updates the rating, text or tags of a review
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Param request body dto.PatchReviewRequest true "Fields to change"
// @Success 200 {object} models.Review "Review updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [patch]
func (c *ReviewController) PatchReview(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PatchReviewRequest
	if err := middleware.BindJSON(ctx, &req, "patch review"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	review, err := c.reviews.Patch(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// DeleteReview deletes a review and its threads
// @Summary Delete a review
// @Tags reviews
// @Param id path string true "Review ID (UUID)"
// @Success 204 "Review deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, err := helpers.ParseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.reviews.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
