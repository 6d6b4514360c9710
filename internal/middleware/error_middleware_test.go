package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/apperrors"
	"github.com/yigit/courseboard/internal/pkg/dberrors"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want dto.ErrorResponse
	}{
		{
			name: "not found signal",
			err:  dberrors.NewNotFound("course", "id", "42"),
			want: dto.ErrorResponse{Code: 404, Message: "course with id='42' not found"},
		},
		{
			name: "wrapped not found signal",
			err:  fmt.Errorf("lookup: %w", dberrors.NewNotFound("review", "id", "7")),
			want: dto.ErrorResponse{Code: 404, Message: "review with id='7' not found"},
		},
		{
			name: "taxonomy error keeps its code",
			err:  apperrors.Conflict("duplicate value"),
			want: dto.ErrorResponse{Code: 409, Message: "duplicate value"},
		},
		{
			name: "translated storage error",
			err:  apperrors.Translate(errors.New("insert violates foreign key constraint"), "failed to create course"),
			want: dto.ErrorResponse{Code: 400, Message: "invalid reference"},
		},
		{
			name: "document store error",
			err:  &filestorage.StorageError{Code: filestorage.CodeAccessDenied, Key: "k"},
			want: dto.ErrorResponse{Code: 403, Message: "access to trace document storage denied"},
		},
		{
			name: "unclassified error hides detail",
			err:  errors.New("dial tcp 10.0.0.3:5432: secret detail"),
			want: dto.ErrorResponse{Code: 500, Message: "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveError(t, tt.err)

			assert.Equal(t, tt.want.Code, code)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestRecoveryReturnsStandardBody(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, w.Body.String())
}

func TestNoRoute(t *testing.T) {
	r := gin.New()
	r.NoRoute(NoRoute)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"message":"route not found"}`, w.Body.String())
}
