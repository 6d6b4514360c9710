package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appRoutes "github.com/yigit/courseboard/internal/app/routes"
	"github.com/yigit/courseboard/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Mode:           "production",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: config.DatabaseConfig{AcquireTimeout: "2s"},
	}
}

func TestSetupRouterMiddleware(t *testing.T) {
	router, err := SetupRouter(testConfig(), appRoutes.NewControllers(nil, nil, nil, nil, nil, nil, nil), zerolog.Nop())
	require.NoError(t, err)

	t.Run("cors for allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("cors rejects other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	})

	t.Run("swagger", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/course-reviews/{id}/threads")
	})
}

func TestCorsConfigWildcard(t *testing.T) {
	c := corsConfig([]string{"*"})

	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)
}
