package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// HandleAPIError writes the {code, message} body for err and aborts the
// chain. The not-found signal becomes a 404, taxonomy errors keep their code,
// and anything unclassified is a generic 500 with the detail only logged.
func HandleAPIError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(writeError(c, err))
}

func writeError(c *gin.Context, err error) (int, dto.ErrorResponse) {
	var (
		notFound   *dberrors.NotFoundError
		httpErr    *apperrors.HTTPError
		storageErr *filestorage.StorageError
	)

	switch {
	case errors.As(err, &notFound):
		httpErr = apperrors.NotFound(notFound.Entity, notFound.Field, notFound.Value)
	case errors.As(err, &httpErr):
	case errors.As(err, &storageErr):
		httpErr = storageErr.HTTPError()
	default:
		httpErr = apperrors.InternalError()
	}

	if httpErr.Code >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed")
	}

	return httpErr.Code, dto.ErrorResponse{Code: httpErr.Code, Message: httpErr.Message}
}

// Recovery turns panics into the standard 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		HandleAPIError(c, apperrors.InternalError())
	})
}

// NoRoute answers unknown routes with the standard 404 body.
func NoRoute(c *gin.Context) {
	HandleAPIError(c, apperrors.NotFound("route not found"))
}
