package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimtab/internal/domain"
	"claimtab/internal/extract"
	"claimtab/internal/port"
)

// fakeTextExtractor treats the document bytes as the already-extracted text.
// Empty bytes simulate an unreadable scan.
type fakeTextExtractor struct{}

func (fakeTextExtractor) ExtractText(_ context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", port.ErrNoText
	}
	return string(data), nil
}

func newTestProcessor() *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(fakeTextExtractor{}, []port.FieldExtractor{
		extract.NewBPHExtractor(logger),
		extract.NewOVHExtractor(logger),
	}, logger)
}

func TestProcess_EmptyBatch(t *testing.T) {
	result, err := newTestProcessor().Process(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Source)
	assert.Empty(t, result.Target)
	assert.Equal(t, 0, result.Stats.TotalFiles)
	assert.NotEmpty(t, result.Stats.RunID)
}

func TestProcess_MixedBatch(t *testing.T) {
	docs := []Document{
		{Name: "RDR_482913.pdf", Data: []byte("Reclamation ID 482913\nStyle No | 123456\n")},
		{Name: "CR_1234567.pdf", Data: []byte("Control report\n1234567 OTTO\n")},
		{Name: "broken.pdf", Data: nil},
		{Name: "scan.pdf", Data: []byte("plain unrelated text")},
	}

	result, err := newTestProcessor().Process(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, result.Source, 4)
	require.Len(t, result.Target, 4)

	// Input order survives into the table.
	assert.Equal(t, "RDR_482913.pdf", result.Source[0].SourceFile)
	assert.Equal(t, "scan.pdf", result.Source[3].SourceFile)

	assert.Equal(t, "482913", result.Source[0].ClaimNo)
	assert.Equal(t, "BPH", result.Source[0].Customer)

	assert.Equal(t, "1234567", result.Source[1].ClaimNo)
	assert.Equal(t, "OVH", result.Source[1].Customer)

	assert.Equal(t, "Unknown", result.Source[2].Customer)
	assert.Equal(t, domain.ExtractionFailed, result.Source[2].ClaimNo)
	assert.Equal(t, domain.ExtractionFailed, result.Source[2].FaultDescription)

	// Unclassifiable documents run the default extractor but keep its tag.
	assert.Equal(t, "BPH", result.Source[3].Customer)
	assert.Equal(t, domain.NotExtracted, result.Source[3].ClaimNo)

	stats := result.Stats
	assert.Equal(t, 4, stats.TotalFiles)
	assert.Equal(t, 2, stats.ProcessedFiles)
	assert.Equal(t, 1, stats.AmbiguousFiles)
	assert.Equal(t, 1, stats.FailedExtractions)
	assert.Equal(t, 2, stats.FamilyCounts[domain.FamilyBPH])
	assert.Equal(t, 1, stats.FamilyCounts[domain.FamilyOVH])
	assert.Equal(t, 1, stats.FamilyCounts[domain.FamilyUnknown])
	assert.NotEmpty(t, stats.FieldStats)
}

func TestProcess_TargetMirrorsSource(t *testing.T) {
	docs := []Document{
		{Name: "RDR_007.pdf", Data: []byte("Reclamation ID 007123\n")},
	}

	result, err := newTestProcessor().Process(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, result.Target, 1)

	row := result.Target[0]
	require.Len(t, row, len(domain.TargetColumns))
	// Identifiers stay strings; leading zeros survive the mapping.
	assert.Equal(t, "007123", row[domain.ColClaimNo])
	assert.Equal(t, "Failure", row[domain.ColClaimStatus])
	// Decision was not extracted, so the claim type takes the default.
	assert.Equal(t, "Claim", row[domain.ColClaimType])
	assert.Equal(t, "", row[domain.ColVendor])
	assert.Equal(t, "", row[domain.ColClaimDate])
}

func TestProcess_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProcessor().Process(ctx, []Document{{Name: "a.pdf", Data: []byte("x")}})
	assert.ErrorIs(t, err, context.Canceled)
}
