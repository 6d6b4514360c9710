package helpers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

// ParseUUIDParam reads a path parameter that must be a well-formed UUID.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.BadRequest("invalid " + name + " format")
	}
	return id, nil
}
