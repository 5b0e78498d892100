// Package pipeline drives per-document processing for one batch run: text
// extraction, family classification, field extraction, aggregation into the
// source table, and schema mapping into the target table.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"claimtab/internal/classify"
	"claimtab/internal/domain"
	"claimtab/internal/mapper"
	"claimtab/internal/port"
)

// Document is one batch input: the filename drives classification, the bytes
// feed the text extractor.
type Document struct {
	Name string
	Data []byte
}

// Result carries both output tables and the run statistics.
type Result struct {
	Source domain.SourceTable `json:"source"`
	Target domain.TargetTable `json:"target"`
	Stats  domain.BatchStats  `json:"stats"`
}

// Processor orchestrates a batch run. Documents are processed sequentially
// in input order; every failure mode surfaces as sentinel data, never as an
// aborted batch.
type Processor struct {
	textExtractor port.TextExtractor
	extractors    map[domain.Family]port.FieldExtractor
	logger        *slog.Logger
}

// NewProcessor wires the orchestrator. A nil logger falls back to
// slog.Default().
func NewProcessor(textExtractor port.TextExtractor, extractors []port.FieldExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	byFamily := make(map[domain.Family]port.FieldExtractor, len(extractors))
	for _, e := range extractors {
		byFamily[e.Family()] = e
	}
	return &Processor{
		textExtractor: textExtractor,
		extractors:    byFamily,
		logger:        logger,
	}
}

// Process runs one batch. An empty input yields two empty tables, not an
// error. The only error returned is context cancellation.
func (p *Processor) Process(ctx context.Context, docs []Document) (*Result, error) {
	runID := uuid.New().String()
	logger := p.logger.With(slog.String("run_id", runID))

	source := make(domain.SourceTable, 0, len(docs))
	ambiguous := 0
	failed := 0

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := p.processOne(ctx, logger, doc, &ambiguous, &failed)
		rec.SourceFile = doc.Name
		source = append(source, rec)
	}

	target := mapper.MapTable(source)
	stats := domain.ComputeStats(runID, source, ambiguous, failed)

	logger.Info("batch processed",
		slog.Int("total", stats.TotalFiles),
		slog.Int("processed", stats.ProcessedFiles),
		slog.Int("ambiguous", stats.AmbiguousFiles),
		slog.Int("failed_extractions", stats.FailedExtractions))

	return &Result{Source: source, Target: target, Stats: stats}, nil
}

// processOne handles a single document. Text-extraction failure synthesizes
// a whole-record sentinel; an ambiguous classification falls back to the BPH
// extractor but is counted separately.
func (p *Processor) processOne(ctx context.Context, logger *slog.Logger, doc Document, ambiguous, failed *int) domain.FlatRecord {
	text, err := p.textExtractor.ExtractText(ctx, doc.Data)
	if err != nil {
		if !errors.Is(err, port.ErrNoText) {
			logger.Warn("text extraction error", slog.String("file", doc.Name), slog.Any("error", err))
		} else {
			logger.Warn("no text extracted", slog.String("file", doc.Name))
		}
		*failed++
		return domain.FailedFlatRecord()
	}

	family := classify.Classify(doc.Name, text)
	if family == domain.FamilyUnknown {
		// Compatibility default: unclassifiable documents run through
		// the BPH extractor, but the ambiguity stays visible in stats.
		logger.Warn("could not determine document family, defaulting to BPH",
			slog.String("file", doc.Name))
		*ambiguous++
		family = domain.FamilyBPH
	}

	extractor, ok := p.extractors[family]
	if !ok {
		logger.Error("no extractor registered for family",
			slog.String("family", string(family)), slog.String("file", doc.Name))
		*failed++
		return domain.FailedFlatRecord()
	}

	logger.Debug("document processed", slog.String("file", doc.Name), slog.String("family", string(family)))
	return extractor.Extract(text)
}
