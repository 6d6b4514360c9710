package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// emptiable is implemented by patch inputs.
type emptiable interface {
	IsEmpty() bool
}

// BindJSON decodes and validates the request body into obj. Decoding errors,
// rule violations and patches without any recognized field are all reported
// as a BadRequest naming the operation.
func BindJSON(c *gin.Context, obj any, operation string) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.FromContext(c.Request.Context()).Debug().Err(err).Str("operation", operation).Msg("Rejected request body")
		return apperrors.BadRequest("unable to parse input for " + operation)
	}
	if e, ok := obj.(emptiable); ok && e.IsEmpty() {
		return apperrors.BadRequest("unable to parse input for " + operation)
	}
	return nil
}

// BindQuery is BindJSON for query or form parameters.
func BindQuery(c *gin.Context, obj any, operation string) error {
	if err := c.ShouldBind(obj); err != nil {
		logger.FromContext(c.Request.Context()).Debug().Err(err).Str("operation", operation).Msg("Rejected request parameters")
		return apperrors.BadRequest("unable to parse input for " + operation)
	}
	return nil
}
