package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"claimtab/internal/domain"
	"claimtab/internal/normalize"
)

// BPH reclamation-details reports. Labels usually sit on the same line as
// their value, but table layouts flatten unpredictably, so most fields carry
// a combined-line fallback.
var (
	bphClaimPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Reclamation\s+ID\s*[\|:]?\s*(\d+)`),
		regexp.MustCompile(`(?i)Reclamation\s+details\s+report\s+with\s+reclamation\s+ID\s*=\s*(\d+)`),
	}

	bphStyleRe         = regexp.MustCompile(`(?i)Style\s+No\s*[\|:]?\s*(\d+)`)
	bphStyleItemPairRe = regexp.MustCompile(`(?i)Style\s+No\s+Item\s+No[^\d]*(\d+)\s+(\d+)`)
	bphItemRe          = regexp.MustCompile(`(?i)Item\s+No\s*[\|:]?\s*(\d+)`)

	bphQtyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Delivered\s+quantity\s*[\|:]?\s*(\d+)`),
		regexp.MustCompile(`(?i)Delivered\s+quantity\s+Office[^\d]*(\d+)`),
	}

	// Whitespace variants around the company marker, tried in sequence.
	bphSupplierPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)OI China\s+(\d{6})\s+([^\n]+?)\s*Dept\./Subdept\.`),
		regexp.MustCompile(`(?i)OI\s+China\s+(\d{6})\s+([^\n]+?)\s*Dept\./Subdept\.`),
		regexp.MustCompile(`(?i)OI China\s+(\d{6})\s+([^\n]+?)\s+Dept\./Subdept\.`),
		regexp.MustCompile(`(?i)OI\s+China\s+(\d{6})\s+([^\n]+?)\s+Dept\./Subdept\.`),
	}

	bphDeptRe        = regexp.MustCompile(`(?i)Dept\./Subdept\.\s*[\|:]?\s*([\d\.]+)`)
	bphDeptOrderRe   = regexp.MustCompile(`(?i)Dept\./Subdept\.\s+Order\s+No[^\d]*([\d\.]+)\s+(\d+)`)
	bphOrderRe       = regexp.MustCompile(`(?i)Order\s+No\s*[\|:]?\s*(\d+)`)
	bphSampleFaultRe = regexp.MustCompile(`Random\s+sample\s*Faulty\s+pieces\s*(\d+)\s*(\d+)`)

	bphDecisionHeaderRe = regexp.MustCompile(`(?i)Decided by\s+Date of decision\s+Decision`)
	bphDecisionDateRe   = regexp.MustCompile(`(?i)Date of decision\s+(\d+/\d+/\d+)`)
	bphDecidedByLineRe  = regexp.MustCompile(`(?i)Decided by[^\n]*`)
	dateTokenRe         = regexp.MustCompile(`(\d+/\d+/\d+)`)
	lineRe              = regexp.MustCompile(`[^\n]+`)

	bphCommentMarkerRe = regexp.MustCompile(`(?i)Comment\s+for\s+market[^\n]*`)
	bphCommentEndRes   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Samples`),
		regexp.MustCompile(`(?i)Rework\s+details`),
		regexp.MustCompile(`(?i)Reclamation\s+details\s+report`),
		regexp.MustCompile(`(?i)Printed\s+on`),
	}

	statusStripRe    = regexp.MustCompile(`[\|:\-\*]`)
	trailingNumberRe = regexp.MustCompile(`\s+\d+$`)
	allDigitsRe      = regexp.MustCompile(`^\d+$`)
)

// BPHExtractor extracts fields from BPH reclamation-details reports.
type BPHExtractor struct {
	logger *slog.Logger
}

// NewBPHExtractor creates a BPH extractor. A nil logger falls back to
// slog.Default().
func NewBPHExtractor(logger *slog.Logger) *BPHExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BPHExtractor{logger: logger}
}

// Family returns domain.FamilyBPH.
func (e *BPHExtractor) Family() domain.Family { return domain.FamilyBPH }

// Extract pulls every BPH field from text. Fields whose patterns fail keep
// the NotExtracted sentinel.
func (e *BPHExtractor) Extract(text string) domain.FlatRecord {
	rec := domain.NewFlatRecord(domain.FamilyBPH)

	guard(e.logger, "Claim no", func() {
		if v, ok := firstOf(text, groupEach(bphClaimPatterns, 1)...); ok {
			rec.ClaimNo = v
		}
	})

	// Style No and Item No share a combined-table fallback: "Style No Item
	// No" followed by both numbers on one line.
	var stylePair []string
	guard(e.logger, "Style No", func() {
		if m := bphStyleRe.FindStringSubmatch(text); m != nil {
			rec.StyleNo = m[1]
			return
		}
		stylePair = bphStyleItemPairRe.FindStringSubmatch(text)
		if stylePair != nil {
			rec.StyleNo = stylePair[1]
		}
	})

	guard(e.logger, "Item No", func() {
		if m := bphItemRe.FindStringSubmatch(text); m != nil {
			rec.ItemNo = m[1]
			return
		}
		if stylePair != nil {
			rec.ItemNo = stylePair[2]
		}
	})

	guard(e.logger, "Delivered quantity", func() {
		v, ok := firstOf(text, groupEach(bphQtyPatterns, 1)...)
		if !ok {
			return
		}
		// A 6-digit quantity is a known parsing artifact, not real data.
		if len(v) == 6 {
			return
		}
		rec.DeliveredQty = v
	})

	guard(e.logger, "Supplier Name", func() {
		if v, ok := firstOf(text, groupEach(bphSupplierPatterns, 2)...); ok {
			rec.SupplierName = normalize.CollapseWhitespace(v)
		}
	})

	// Dept. and Order No also share a combined-line fallback.
	var deptPair []string
	guard(e.logger, "Dept.", func() {
		if m := bphDeptRe.FindStringSubmatch(text); m != nil {
			rec.Department = m[1]
			return
		}
		deptPair = bphDeptOrderRe.FindStringSubmatch(text)
		if deptPair != nil {
			rec.Department = deptPair[1]
		}
	})

	guard(e.logger, "Order No", func() {
		if m := bphOrderRe.FindStringSubmatch(text); m != nil {
			rec.OrderNo = m[1]
			return
		}
		if deptPair != nil {
			rec.OrderNo = deptPair[2]
		}
	})

	guard(e.logger, "Random quantity", func() {
		if m := bphSampleFaultRe.FindStringSubmatch(text); m != nil {
			rec.RandomQty = m[1]
			rec.FaultyPcs = m[2]
		}
	})

	guard(e.logger, "Date of decision", func() {
		rec.DecisionDate = e.decisionDate(text, rec.DecisionDate)
	})

	guard(e.logger, "Description of faults", func() {
		if v, ok := e.comment(text); ok {
			rec.FaultDescription = v
		}
	})

	guard(e.logger, "Decision", func() {
		if rec.ClaimNo == domain.NotExtracted {
			return
		}
		if v, ok := e.status(text, rec.ClaimNo); ok {
			rec.Decision = v
		}
	})

	return rec
}

// decisionDate resolves the decision date through three tiers: the data row
// under the "Decided by / Date of decision / Decision" header, a direct
// labeled value, and the line following a bare "Decided by" marker. Dates are
// month/day/year on BPH reports.
func (e *BPHExtractor) decisionDate(text, current string) string {
	if loc := bphDecisionHeaderRe.FindStringIndex(text); loc != nil {
		if line := lineRe.FindString(text[loc[1]:]); line != "" {
			if m := dateTokenRe.FindStringSubmatch(line); m != nil {
				return normalize.ConvertDate(m[1], normalize.MonthDayYear)
			}
		}
	}

	if m := bphDecisionDateRe.FindStringSubmatch(text); m != nil {
		return normalize.ConvertDate(m[1], normalize.MonthDayYear)
	}

	if loc := bphDecidedByLineRe.FindStringIndex(text); loc != nil {
		if line := lineRe.FindString(text[loc[1]:]); line != "" {
			if m := dateTokenRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				return normalize.ConvertDate(m[1], normalize.MonthDayYear)
			}
		}
	}

	return current
}

// comment captures the "Comment for market" block up to the first terminator
// marker (or end of text), with newlines collapsed to single spaces.
func (e *BPHExtractor) comment(text string) (string, bool) {
	loc := bphCommentMarkerRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	if end := earliestIndex(rest, bphCommentEndRes); end >= 0 {
		rest = rest[:end]
	}

	return normalize.CollapseWhitespace(rest), true
}

// status captures the free text following the claim number inside the
// "Reclamation ID ... <id> <status>" span, bounded by the next line break,
// "Style No", or "Date of delivery". Pure numbers are rejected.
func (e *BPHExtractor) status(text, claimNo string) (string, bool) {
	re, err := regexp.Compile(
		`(?i)Reclamation\s+ID\s*[\s\S]*?` + regexp.QuoteMeta(claimNo) +
			`\s+([A-Za-z0-9\s()]+?)\s*(?:\n|Style\s+No|Date\s+of\s+delivery)`,
	)
	if err != nil {
		return "", false
	}

	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	status := statusStripRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
	status = normalize.CollapseWhitespace(status)
	status = trailingNumberRe.ReplaceAllString(status, "")
	if status == "" || allDigitsRe.MatchString(status) {
		return "", false
	}
	return status, true
}
