package controllers

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
)

const maxTraceDocumentSize = 20 << 20

// TraceDocumentController stores and serves course evaluation PDFs
type TraceDocumentController struct {
	documents filestorage.DocumentStore
}

// NewTraceDocumentController creates a new TraceDocumentController
func NewTraceDocumentController(documents filestorage.DocumentStore) *TraceDocumentController {
	return &TraceDocumentController{documents: documents}
}

// UploadTraceDocument stores the evaluation report of one course offering
// @Summary Upload a trace document
// @Description Stores a PDF under trace-evaluations/{department}/{course_code}/{semester}_{year}/{professor_id}.pdf, replacing any earlier upload
// @Tags trace-documents
// @Accept multipart/form-data
// @Produce json
// @Param department_id formData int true "Department ID"
// @Param course_code formData int true "Course code"
// @Param semester formData string true "Semester" Enums(fall, spring, summer_1, summer_2)
// @Param year formData int true "Year"
// @Param professor_id formData string true "Professor ID (UUID)"
// @Param file formData file true "PDF document"
// @Success 201 {object} dto.TraceDocumentResponse "Document stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Storage access denied"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trace-documents [post]
func (c *TraceDocumentController) UploadTraceDocument(ctx *gin.Context) {
	var query dto.TraceDocumentQuery
	if err := middleware.BindQuery(ctx, &query, "upload trace document"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.BadRequest("file is required"))
		return
	}
	if !isPDF(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		middleware.HandleAPIError(ctx, apperrors.BadRequest("file must be a PDF"))
		return
	}
	if fileHeader.Size > maxTraceDocumentSize {
		middleware.HandleAPIError(ctx, apperrors.BadRequest(fmt.Sprintf("file exceeds %d MB", maxTraceDocumentSize>>20)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.BadRequest("unable to read uploaded file"))
		return
	}
	defer file.Close()

	key := filestorage.BuildKey(query.Key())
	if err := c.documents.Upload(ctx.Request.Context(), key, file, fileHeader.Size); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TraceDocumentResponse{Key: key})
}

// GetTraceDocument streams a stored evaluation report
// @Summary Download a trace document
// @Tags trace-documents
// @Produce application/pdf
// @Param department_id query int true "Department ID"
// @Param course_code query int true "Course code"
// @Param semester query string true "Semester" Enums(fall, spring, summer_1, summer_2)
// @Param year query int true "Year"
// @Param professor_id query string true "Professor ID (UUID)"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Storage access denied"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trace-documents [get]
func (c *TraceDocumentController) GetTraceDocument(ctx *gin.Context) {
	var query dto.TraceDocumentQuery
	if err := middleware.BindQuery(ctx, &query, "get trace document"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	key := filestorage.BuildKey(query.Key())
	doc, err := c.documents.Fetch(ctx.Request.Context(), key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer doc.Body.Close()

	ctx.DataFromReader(http.StatusOK, doc.Size, doc.ContentType, doc.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`inline; filename="%s"`, path.Base(key)),
	})
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return strings.HasPrefix(contentType, filestorage.PDFContentType)
}
