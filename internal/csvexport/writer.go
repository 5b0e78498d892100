// Package csvexport serializes the source and target tables as CSV for
// spreadsheet consumers. Order numbers and the combined random-check figure
// get an apostrophe text guard so Excel neither drops leading zeros nor
// auto-converts slash-separated digits into dates.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"claimtab/internal/domain"
)

// BOM is the UTF-8 byte-order mark; spreadsheet tools need it to pick the
// right encoding. Callers emit it once before the CSV body.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// sourceOrderCol is the index of "Order No" in domain.SourceColumns.
var sourceOrderCol = func() int {
	for i, c := range domain.SourceColumns {
		if c == "Order No" {
			return i
		}
	}
	panic("source columns missing Order No")
}()

// Writer wraps csv.Writer for exporting batch tables.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSourceTable writes the source header and one row per record.
func (w *Writer) WriteSourceTable(table domain.SourceTable) error {
	if err := w.csv.Write(domain.SourceColumns); err != nil {
		return err
	}
	for i := range table {
		row := table[i].Row()
		row[sourceOrderCol] = guardNumeric(row[sourceOrderCol])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTargetTable writes the 25-column target header and rows.
func (w *Writer) WriteTargetTable(table domain.TargetTable) error {
	if err := w.csv.Write(domain.TargetColumns); err != nil {
		return err
	}
	for _, rec := range table {
		row := make([]string, len(rec))
		copy(row, rec)
		row[domain.ColOrderNo] = guardNumeric(row[domain.ColOrderNo])
		row[domain.ColRandomCheck] = guardSlashNumeric(row[domain.ColRandomCheck])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// guardNumeric prefixes purely numeric values with an apostrophe so Excel
// keeps them as text (preserving leading zeros).
func guardNumeric(v string) string {
	if v != "" && allDigits(v) {
		return "'" + v
	}
	return v
}

// guardSlashNumeric prefixes digit-and-slash values (like "5/80") with an
// apostrophe so Excel does not read them as dates.
func guardSlashNumeric(v string) string {
	if v == "" || !strings.Contains(v, "/") {
		return v
	}
	if allDigits(strings.ReplaceAll(v, "/", "")) {
		return "'" + v
	}
	return v
}

func allDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BuildFilename returns a timestamped download filename, e.g.
// source_data_20250131_154500.csv.
func BuildFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_150405"))
}
