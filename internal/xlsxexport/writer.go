// Package xlsxexport renders a batch result as an XLSX workbook with the
// source table, the target table, and the extraction statistics on separate
// sheets. Cells are written as strings throughout, so order numbers keep
// their leading zeros without the CSV apostrophe guard.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"claimtab/internal/domain"
)

const (
	sheetSource = "Source Data"
	sheetTarget = "Target Format"
	sheetStats  = "Statistics"
)

var statsColumns = []string{
	"Customer Type",
	"Field Name",
	"Successfully Extracted",
	"Total",
	"Success Rate",
}

// Write renders the workbook and returns its bytes.
func Write(source domain.SourceTable, target domain.TargetTable, stats domain.BatchStats) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSource); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetTarget, sheetStats} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeRow(f, sheetSource, 1, domain.SourceColumns); err != nil {
		return nil, err
	}
	for i := range source {
		if err := writeRow(f, sheetSource, i+2, source[i].Row()); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetTarget, 1, domain.TargetColumns); err != nil {
		return nil, err
	}
	for i, rec := range target {
		if err := writeRow(f, sheetTarget, i+2, rec); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetStats, 1, statsColumns); err != nil {
		return nil, err
	}
	for i, fs := range stats.FieldStats {
		row := []string{
			string(fs.Family),
			fs.Field,
			fmt.Sprintf("%d", fs.Extracted),
			fmt.Sprintf("%d", fs.Total),
			fmt.Sprintf("%.1f%%", fs.Rate*100),
		}
		if err := writeRow(f, sheetStats, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes values as string cells on the given 1-based row.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
