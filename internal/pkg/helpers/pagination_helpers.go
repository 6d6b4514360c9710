package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is a validated 1-based page request.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultPagination returns page 1 with the default limit.
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Limit: DefaultLimit}
}

// Offset converts the page into a zero-based row offset.
func (p Pagination) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.Limit)
}

// CalculateOffsetLimit returns the offset and limit for SQL queries.
func CalculateOffsetLimit(p Pagination) (offset uint64, limit uint64) {
	return p.Offset(), uint64(p.Limit)
}

// ParsePaginationValues validates raw page and limit strings. Empty values take
// the defaults; malformed values or values below 1 are rejected, never clamped.
// A page whose offset does not fit in a BIGINT is rejected as well.
func ParsePaginationValues(page, limit string) (Pagination, error) {
	p := DefaultPagination()

	var err error
	if p.Page, err = parsePositive(page, DefaultPage); err != nil {
		return Pagination{}, apperrors.BadRequest("invalid pagination parameters")
	}
	if p.Limit, err = parsePositive(limit, DefaultLimit); err != nil {
		return Pagination{}, apperrors.BadRequest("invalid pagination parameters")
	}
	if uint64(p.Page-1) > math.MaxInt64/uint64(p.Limit) {
		return Pagination{}, apperrors.BadRequest("invalid pagination parameters")
	}
	return p, nil
}

// ParsePagination reads the page and limit query parameters.
func ParsePagination(c *gin.Context) (Pagination, error) {
	return ParsePaginationValues(c.Query("page"), c.Query("limit"))
}

func parsePositive(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
