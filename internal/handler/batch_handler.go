package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"claimtab/internal/config"
	"claimtab/internal/csvexport"
	"claimtab/internal/pipeline"
	"claimtab/internal/xlsxexport"
)

// BatchHandler processes uploaded claim PDFs. Every endpoint is stateless:
// the batch is processed per request and nothing is stored.
type BatchHandler struct {
	processor *pipeline.Processor
	batch     config.BatchConfig
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(processor *pipeline.Processor, batch config.BatchConfig) *BatchHandler {
	return &BatchHandler{processor: processor, batch: batch}
}

// Process handles POST /api/v1/batches.
// It accepts multipart form uploads under the "files" field and returns the
// source table, the target table, and the batch statistics as JSON.
func (h *BatchHandler) Process(c *gin.Context) {
	docs, ok := h.readBatch(c)
	if !ok {
		return
	}

	result, err := h.processor.Process(c.Request.Context(), docs)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "PROCESSING_FAILED", err.Error())
		return
	}

	RespondOK(c, result)
}

// ExportSourceCSV handles POST /api/v1/batches/source.csv.
func (h *BatchHandler) ExportSourceCSV(c *gin.Context) {
	docs, ok := h.readBatch(c)
	if !ok {
		return
	}

	result, err := h.processor.Process(c.Request.Context(), docs)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "PROCESSING_FAILED", err.Error())
		return
	}

	writeCSVHeaders(c, csvexport.BuildFilename("source_data", time.Now()))
	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteSourceTable(result.Source); err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}
	w.Flush()
}

// ExportTargetCSV handles POST /api/v1/batches/target.csv.
func (h *BatchHandler) ExportTargetCSV(c *gin.Context) {
	docs, ok := h.readBatch(c)
	if !ok {
		return
	}

	result, err := h.processor.Process(c.Request.Context(), docs)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "PROCESSING_FAILED", err.Error())
		return
	}

	writeCSVHeaders(c, csvexport.BuildFilename("target_data", time.Now()))
	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteTargetTable(result.Target); err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}
	w.Flush()
}

// ExportWorkbook handles POST /api/v1/batches/workbook.xlsx.
func (h *BatchHandler) ExportWorkbook(c *gin.Context) {
	docs, ok := h.readBatch(c)
	if !ok {
		return
	}

	result, err := h.processor.Process(c.Request.Context(), docs)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "PROCESSING_FAILED", err.Error())
		return
	}

	data, err := xlsxexport.Write(result.Source, result.Target, result.Stats)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}

	filename := fmt.Sprintf("claim_tables_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write(data)
}

// readBatch reads the multipart "files" field into pipeline documents,
// enforcing the configured count and size limits. Input order is preserved.
func (h *BatchHandler) readBatch(c *gin.Context) ([]pipeline.Document, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form with a files field is required")
		return nil, false
	}

	files := form.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "at least one file is required")
		return nil, false
	}
	if h.batch.MaxFiles > 0 && len(files) > h.batch.MaxFiles {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_FILES",
			fmt.Sprintf("at most %d files per batch", h.batch.MaxFiles))
		return nil, false
	}

	maxBytes := h.batch.MaxFileSizeMB * 1024 * 1024
	docs := make([]pipeline.Document, 0, len(files))
	for _, fh := range files {
		if maxBytes > 0 && fh.Size > maxBytes {
			RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, h.batch.MaxFileSizeMB))
			return nil, false
		}

		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open "+fh.Filename)
			return nil, false
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read "+fh.Filename)
			return nil, false
		}

		docs = append(docs, pipeline.Document{Name: fh.Filename, Data: data})
	}

	return docs, true
}

func writeCSVHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}
