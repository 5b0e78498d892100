package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"claimtab/internal/domain"
)

func TestWrite(t *testing.T) {
	rec := domain.NewFlatRecord(domain.FamilyBPH)
	rec.SourceFile = "RDR_482913.pdf"
	rec.ClaimNo = "482913"
	rec.OrderNo = "007788"

	row := domain.NewTargetRecord()
	row[domain.ColClaimNo] = "482913"
	row[domain.ColClaimStatus] = "Failure"

	stats := domain.BatchStats{
		FieldStats: []domain.FieldStat{
			{Family: domain.FamilyBPH, Field: "Claim no", Extracted: 1, Total: 1, Rate: 1},
		},
	}

	data, err := Write(domain.SourceTable{rec}, domain.TargetTable{row}, stats)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{sheetSource, sheetTarget, sheetStats}, f.GetSheetList())

	v, err := f.GetCellValue(sheetSource, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Source File", v)

	v, err = f.GetCellValue(sheetSource, "A2")
	require.NoError(t, err)
	assert.Equal(t, "RDR_482913.pdf", v)

	// String cells keep leading zeros.
	v, err = f.GetCellValue(sheetSource, "J2")
	require.NoError(t, err)
	assert.Equal(t, "007788", v)

	v, err = f.GetCellValue(sheetTarget, "E2")
	require.NoError(t, err)
	assert.Equal(t, "482913", v)

	v, err = f.GetCellValue(sheetStats, "A2")
	require.NoError(t, err)
	assert.Equal(t, "BPH", v)

	v, err = f.GetCellValue(sheetStats, "E2")
	require.NoError(t, err)
	assert.Equal(t, "100.0%", v)
}

func TestWrite_EmptyTables(t *testing.T) {
	data, err := Write(nil, nil, domain.BatchStats{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(sheetTarget, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Picture", v)
}
