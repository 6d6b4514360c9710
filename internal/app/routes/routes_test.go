package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, NewControllers(nil, nil, nil, nil, nil, nil, nil))
	return router
}

func TestSetupRouterRegistersRoutes(t *testing.T) {
	registered := map[string]bool{}
	for _, route := range newTestRouter().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /ping",
		"GET /metrics",
		"GET /api/v1/health",
		"GET /api/v1/departments",
		"GET /api/v1/departments/:id",
		"GET /api/v1/courses",
		"POST /api/v1/courses",
		"GET /api/v1/courses/:id",
		"PATCH /api/v1/courses/:id",
		"DELETE /api/v1/courses/:id",
		"GET /api/v1/professors",
		"POST /api/v1/professors",
		"GET /api/v1/professors/:id",
		"PATCH /api/v1/professors/:id",
		"DELETE /api/v1/professors/:id",
		"GET /api/v1/reviews",
		"POST /api/v1/reviews",
		"GET /api/v1/reviews/:id",
		"PATCH /api/v1/reviews/:id",
		"DELETE /api/v1/reviews/:id",
		"GET /api/v1/course-reviews/:id/threads",
		"POST /api/v1/course-reviews/:id/threads",
		"PATCH /api/v1/course-reviews/:id/threads/:thread_id",
		"DELETE /api/v1/course-reviews/:id/threads/:thread_id",
		"GET /api/v1/professor-reviews/:id/threads",
		"POST /api/v1/professor-reviews/:id/threads",
		"PATCH /api/v1/professor-reviews/:id/threads/:thread_id",
		"DELETE /api/v1/professor-reviews/:id/threads/:thread_id",
		"GET /api/v1/trace-documents",
		"POST /api/v1/trace-documents",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}

func TestRouterServesWithoutStores(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path string
		want int
	}{
		{"/ping", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/unknown", http.StatusNotFound},
		{"/api/v1/courses/not-a-uuid", http.StatusBadRequest},
		{"/api/v1/course-reviews/not-a-uuid/threads", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
