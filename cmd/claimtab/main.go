// Command claimtab processes inspection-claim PDFs from the command line and
// writes the source and target CSVs (and optionally an XLSX workbook) to an
// output directory.
// Usage: claimtab [-out DIR] [-xlsx] file.pdf... | directory
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"claimtab/internal/config"
	"claimtab/internal/csvexport"
	"claimtab/internal/extract"
	"claimtab/internal/pipeline"
	"claimtab/internal/port"
	"claimtab/internal/textextract"
	"claimtab/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", ".", "output directory for the generated tables")
	withXLSX := flag.Bool("xlsx", false, "also write an XLSX workbook with both tables and statistics")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("usage: claimtab [-out DIR] [-xlsx] file.pdf... | directory")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	docs, err := collectDocuments(flag.Args())
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no PDF files found in arguments")
	}

	processor := pipeline.NewProcessor(
		textextract.NewPDFExtractor(logger),
		[]port.FieldExtractor{
			extract.NewBPHExtractor(logger),
			extract.NewOVHExtractor(logger),
		},
		logger,
	)

	result, err := processor.Process(context.Background(), docs)
	if err != nil {
		return fmt.Errorf("processing batch: %w", err)
	}

	now := time.Now()
	sourcePath := filepath.Join(*outDir, csvexport.BuildFilename("source_data", now))
	targetPath := filepath.Join(*outDir, csvexport.BuildFilename("target_data", now))

	if err := writeSourceCSV(sourcePath, result); err != nil {
		return err
	}
	if err := writeTargetCSV(targetPath, result); err != nil {
		return err
	}
	logger.Info("tables written",
		slog.String("source", sourcePath),
		slog.String("target", targetPath))

	if *withXLSX {
		data, err := xlsxexport.Write(result.Source, result.Target, result.Stats)
		if err != nil {
			return fmt.Errorf("rendering workbook: %w", err)
		}
		workbookPath := filepath.Join(*outDir,
			fmt.Sprintf("claim_tables_%s.xlsx", now.Format("20060102_150405")))
		if err := os.WriteFile(workbookPath, data, 0o644); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		logger.Info("workbook written", slog.String("path", workbookPath))
	}

	printStats(result)
	return nil
}

// collectDocuments reads PDFs from the argument paths. A directory argument
// contributes its *.pdf entries in name order; explicit files keep argument
// order.
func collectDocuments(args []string) ([]pipeline.Document, error) {
	var docs []pipeline.Document
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			doc, err := readDocument(arg)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			doc, err := readDocument(filepath.Join(arg, name))
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func readDocument(path string) (pipeline.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return pipeline.Document{Name: filepath.Base(path), Data: data}, nil
}

func writeSourceCSV(path string, result *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteSourceTable(result.Source); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeTargetCSV(path string, result *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteTargetTable(result.Target); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func printStats(result *pipeline.Result) {
	s := result.Stats
	fmt.Printf("Files: %d (processed %d, ambiguous %d, failed extractions %d)\n",
		s.TotalFiles, s.ProcessedFiles, s.AmbiguousFiles, s.FailedExtractions)
	for family, count := range s.FamilyCounts {
		fmt.Printf("  %s: %d\n", family, count)
	}
}
