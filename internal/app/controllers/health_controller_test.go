package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{"database up", nil, http.StatusOK, `{"status":"ok","database":"up"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"degraded","database":"down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := new(mockPinger)
			pinger.On("Ping", mock.Anything).Return(tt.pingErr)

			r := gin.New()
			r.GET("/health", NewHealthController(pinger).Health)

			w := performRequest(r, http.MethodGet, "/health", "")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
