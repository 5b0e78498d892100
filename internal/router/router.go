package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"claimtab/internal/config"
	"claimtab/internal/handler"
	"claimtab/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	batchH *handler.BatchHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	batches := v1.Group("/batches")
	batches.POST("", batchH.Process)
	batches.POST("/source.csv", batchH.ExportSourceCSV)
	batches.POST("/target.csv", batchH.ExportTargetCSV)
	batches.POST("/workbook.xlsx", batchH.ExportWorkbook)

	return r
}

// NewServer wraps the engine in an http.Server carrying the configured
// address and read/write timeouts.
func NewServer(cfg config.ServerConfig, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
