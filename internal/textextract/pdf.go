// Package textextract converts PDF bytes into plain text for the extraction
// pipeline. It uses ledongthuc/pdf (pure Go, no CGO); pages that cannot be
// read are skipped, and a document whose pages yield nothing usable is
// reported as port.ErrNoText rather than partial garbage.
package textextract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"claimtab/internal/port"
)

// PDFExtractor implements port.TextExtractor for PDF documents.
type PDFExtractor struct {
	logger *slog.Logger
}

// NewPDFExtractor creates a PDF text extractor. A nil logger falls back to
// slog.Default().
func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// ExtractText returns the concatenated plain text of every page, joined with
// newlines. It returns an error wrapping port.ErrNoText when the file is not
// a readable PDF or the result is empty/whitespace-only.
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	// The underlying reader panics on some malformed files; a broken
	// document must degrade to a failed extraction, not a crashed batch.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("pdf reader panicked", slog.Any("panic", r))
			text = ""
			err = fmt.Errorf("pdf reader panic: %v: %w", r, port.ErrNoText)
		}
	}()

	if len(data) == 0 {
		return "", fmt.Errorf("empty document: %w", port.ErrNoText)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %v: %w", err, port.ErrNoText)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Debug("skipping unreadable page", slog.Int("page", i), slog.Any("error", err))
			continue
		}
		if pageText == "" {
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("all pages empty: %w", port.ErrNoText)
	}

	return sb.String(), nil
}
