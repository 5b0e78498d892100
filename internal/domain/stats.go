package domain

// FieldStat counts successful extractions of one field across the documents
// of one family.
type FieldStat struct {
	Family    Family  `json:"family"`
	Field     string  `json:"field"`
	Extracted int     `json:"extracted"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// BatchStats summarizes one batch run.
type BatchStats struct {
	RunID             string         `json:"run_id"`
	TotalFiles        int            `json:"total_files"`
	ProcessedFiles    int            `json:"processed_files"`
	FamilyCounts      map[Family]int `json:"family_counts"`
	AmbiguousFiles    int            `json:"ambiguous_files"`
	FailedExtractions int            `json:"failed_extractions"`
	FieldStats        []FieldStat    `json:"field_stats"`
}

// ComputeStats derives batch statistics from a finished source table.
// Ambiguous and failed counts are accumulated by the orchestrator while
// processing and passed through.
func ComputeStats(runID string, table SourceTable, ambiguous, failed int) BatchStats {
	stats := BatchStats{
		RunID:             runID,
		TotalFiles:        len(table),
		FamilyCounts:      make(map[Family]int),
		AmbiguousFiles:    ambiguous,
		FailedExtractions: failed,
	}

	for i := range table {
		rec := &table[i]
		stats.FamilyCounts[Family(rec.Customer)]++

		for _, field := range FlatFieldNames {
			v := rec.FieldValue(field)
			if v != NotExtracted && v != ExtractionFailed {
				stats.ProcessedFiles++
				break
			}
		}
	}

	for _, family := range []Family{FamilyBPH, FamilyOVH} {
		total := stats.FamilyCounts[family]
		if total == 0 {
			continue
		}
		for _, field := range FlatFieldNames {
			extracted := 0
			for i := range table {
				if table[i].Customer != string(family) {
					continue
				}
				if table[i].FieldValue(field) != NotExtracted {
					extracted++
				}
			}
			stats.FieldStats = append(stats.FieldStats, FieldStat{
				Family:    family,
				Field:     field,
				Extracted: extracted,
				Total:     total,
				Rate:      float64(extracted) / float64(total),
			})
		}
	}

	return stats
}
