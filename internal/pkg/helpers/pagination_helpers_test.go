package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
)

func TestParsePaginationValues(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		limit   string
		want    Pagination
		wantErr bool
	}{
		{name: "defaults", want: Pagination{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", want: Pagination{Page: 3, Limit: 25}},
		{name: "page only", page: "2", want: Pagination{Page: 2, Limit: 10}},
		{name: "zero page", page: "0", wantErr: true},
		{name: "negative limit", limit: "-5", wantErr: true},
		{name: "not a number", page: "abc", wantErr: true},
		{name: "fractional", limit: "2.5", wantErr: true},
		{name: "offset overflows", page: "4611686018427387905", limit: "4", wantErr: true},
		{name: "offset past bigint", page: "9223372036854775807", limit: "2", wantErr: true},
		{name: "largest page with limit 1", page: "9223372036854775807", limit: "1",
			want: Pagination{Page: math.MaxInt64, Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePaginationValues(tt.page, tt.limit)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, uint64(0), Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, uint64(10), Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, uint64(98), Pagination{Page: 50, Limit: 2}.Offset())

	// consecutive pages tile the row space without gaps
	for page := 1; page < 20; page++ {
		cur := Pagination{Page: page, Limit: 7}
		next := Pagination{Page: page + 1, Limit: 7}
		assert.Equal(t, cur.Offset()+uint64(cur.Limit), next.Offset())
	}
}

func TestPaginationOffset_LargePages(t *testing.T) {
	p, err := ParsePaginationValues("1000000000000", "1000")
	require.NoError(t, err)

	offset, limit := CalculateOffsetLimit(p)
	assert.Equal(t, uint64(999999999999000), offset)
	assert.Equal(t, uint64(1000), limit)
	assert.LessOrEqual(t, offset, uint64(math.MaxInt64))
}

func TestParsePagination_FromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/courses?page=4&limit=5", nil)

	p, err := ParsePagination(c)
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 4, Limit: 5}, p)

	offset, limit := CalculateOffsetLimit(p)
	assert.Equal(t, uint64(15), offset)
	assert.Equal(t, uint64(5), limit)
}
