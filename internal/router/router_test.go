package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimtab/internal/config"
	"claimtab/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewServer(t *testing.T) {
	engine := gin.New()
	srv := NewServer(config.ServerConfig{
		Port:         ":9090",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}, engine)

	require.NotNil(t, srv)
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)
	assert.Equal(t, 60*time.Second, srv.WriteTimeout)
	assert.Equal(t, http.Handler(engine), srv.Handler)
}

func TestSetup_HealthRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := Setup(
		handler.NewBatchHandler(nil, config.BatchConfig{}),
		handler.NewHealthHandler(),
		nil,
		logger,
	)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
