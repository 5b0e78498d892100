// Package classify determines which report family a claim document belongs
// to, from its filename and, failing that, its text content.
package classify

import (
	"strings"

	"claimtab/internal/domain"
)

// Classify picks the document family. Filename prefixes win: RDR means BPH,
// CR means OVH (case-insensitive). Otherwise the text content is probed for
// family markers. FamilyUnknown means neither rule fired; the orchestrator
// still dispatches such documents to the BPH extractor but accounts for them
// separately.
func Classify(filename, text string) domain.Family {
	upper := strings.ToUpper(filename)
	if strings.HasPrefix(upper, "RDR") {
		return domain.FamilyBPH
	}
	if strings.HasPrefix(upper, "CR") {
		return domain.FamilyOVH
	}

	if strings.Contains(text, "Reclamation") && strings.Contains(text, "Reclamation ID") {
		return domain.FamilyBPH
	}
	if strings.Contains(text, "OTTO") && strings.Contains(text, "Control") {
		return domain.FamilyOVH
	}

	return domain.FamilyUnknown
}
