// Command server runs the claimtab HTTP API: stateless endpoints that turn
// uploaded inspection-claim PDFs into the source and target tables.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"claimtab/internal/config"
	"claimtab/internal/extract"
	"claimtab/internal/handler"
	"claimtab/internal/pipeline"
	"claimtab/internal/port"
	"claimtab/internal/router"
	"claimtab/internal/textextract"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	processor := pipeline.NewProcessor(
		textextract.NewPDFExtractor(logger),
		[]port.FieldExtractor{
			extract.NewBPHExtractor(logger),
			extract.NewOVHExtractor(logger),
		},
		logger,
	)

	batchH := handler.NewBatchHandler(processor, cfg.Batch)
	healthH := handler.NewHealthHandler()

	r := router.Setup(batchH, healthH, cfg.CORS.AllowedOrigins, logger)
	srv := router.NewServer(cfg.Server, r)

	logger.Info("server starting",
		slog.String("port", cfg.Server.Port),
		slog.String("environment", cfg.Server.Environment))
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
