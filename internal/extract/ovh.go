package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"claimtab/internal/domain"
	"claimtab/internal/normalize"
)

// OVH control reports. The claim number hangs off a fixed "OTTO" marker and
// most figures live on the single "Style No." section line.
var (
	ovhClaimRe    = regexp.MustCompile(`(\d{7})\s+OTTO`)
	ovhSupplierRe = regexp.MustCompile(`(?i)Buyin\s+Incoming\s+date\s*[\d/]+\s*([^\n]+?)\s*No\.\s+bowls`)
	ovhDeptRe     = regexp.MustCompile(`(?i)dept\.\s*([\d\.]+)`)
	ovhCatNoRe    = regexp.MustCompile(`(?i)Cat\.-No\./Page/Block\s*([^\n]*?)(\d{8})`)

	ovhStyleLineRe = regexp.MustCompile(`(?i)Style\s+No\.\s*([^\n]+)`)
	ovhDeliveredRe = regexp.MustCompile(`([\d,]+)\s+[A-Z]\s+\d+`)
	ovhOrderRe     = regexp.MustCompile(`[A-Z]\s+(\d{6})`)

	// Preferred two-line form: the style line sits between "Style No." and
	// a line starting "Inspection result".
	ovhStyleTwoLineRe = regexp.MustCompile(`(?i)Style\s+No\.\s*\n\s*([^\n]+?)\s*\n\s*Inspection result`)
	ovhStyleTokenRe   = regexp.MustCompile(`\d{6}\s+([^\s]+)`)

	ovhPcsSetRe = regexp.MustCompile(`(?i)pcs/\s*set\s*(\d+)\s*(\d+)(?:\s*(\d+))?`)

	// 4-slash decision record ending in a day/month/2-digit-year date.
	ovhDeciDateRe   = regexp.MustCompile(`([A-Z])\s*/\s*([A-Z])\s*/\s*[^/]+\s*/\s*(\d{1,2}/\d{1,2}/\d{2})`)
	ovhShortDateRe  = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2})`)
	ovhDeciPrefixRe = regexp.MustCompile(`([A-Z])\s*/\s*([A-Z])\s*/\s*[^/]+\s*/\s*$`)

	ovhFaultsMarkerRe = regexp.MustCompile(`(?i)Description\s+of\s+faults`)
	ovhReworkRe       = regexp.MustCompile(`(?i)Rework`)
)

// OVHExtractor extracts fields from OVH control reports.
type OVHExtractor struct {
	logger *slog.Logger
}

// NewOVHExtractor creates an OVH extractor. A nil logger falls back to
// slog.Default().
func NewOVHExtractor(logger *slog.Logger) *OVHExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &OVHExtractor{logger: logger}
}

// Family returns domain.FamilyOVH.
func (e *OVHExtractor) Family() domain.Family { return domain.FamilyOVH }

// Extract pulls every OVH field from text. Fields whose patterns fail keep
// the NotExtracted sentinel.
func (e *OVHExtractor) Extract(text string) domain.FlatRecord {
	rec := domain.NewFlatRecord(domain.FamilyOVH)

	guard(e.logger, "Claim no", func() {
		if m := ovhClaimRe.FindStringSubmatch(text); m != nil {
			rec.ClaimNo = m[1]
		}
	})

	guard(e.logger, "Supplier Name", func() {
		if m := ovhSupplierRe.FindStringSubmatch(text); m != nil {
			rec.SupplierName = normalize.CollapseWhitespace(m[1])
		}
	})

	guard(e.logger, "Dept.", func() {
		if m := ovhDeptRe.FindStringSubmatch(text); m != nil {
			rec.Department = m[1]
		}
	})

	guard(e.logger, "Item No", func() {
		if m := ovhCatNoRe.FindStringSubmatch(text); m != nil {
			rec.ItemNo = m[2]
		}
	})

	// Delivered quantity and Order No both come from the "Style No."
	// section line, each with its own sub-pattern.
	guard(e.logger, "Delivered quantity", func() {
		if m := ovhStyleLineRe.FindStringSubmatch(text); m != nil {
			if d := ovhDeliveredRe.FindStringSubmatch(m[1]); d != nil {
				rec.DeliveredQty = strings.ReplaceAll(d[1], ",", "")
			}
		}
	})

	guard(e.logger, "Order No", func() {
		if m := ovhStyleLineRe.FindStringSubmatch(text); m != nil {
			if o := ovhOrderRe.FindStringSubmatch(m[1]); o != nil {
				rec.OrderNo = o[1]
			}
		}
	})

	guard(e.logger, "Style No", func() {
		if v, ok := e.styleNo(text); ok {
			rec.StyleNo = v
		}
	})

	guard(e.logger, "Random quantity", func() {
		e.pcsSet(text, &rec)
	})

	guard(e.logger, "Decision", func() {
		e.decision(text, &rec)
	})

	guard(e.logger, "Description of faults", func() {
		if v, ok := e.faults(text); ok {
			rec.FaultDescription = v
		}
	})

	return rec
}

// styleNo prefers the two-line form (style line followed by "Inspection
// result"); when that form is present it decides the outcome by itself.
// Otherwise the same-line tiers run in order: the token after a 6-digit
// number, then the line's last whitespace-delimited token.
func (e *OVHExtractor) styleNo(text string) (string, bool) {
	if m := ovhStyleTwoLineRe.FindStringSubmatch(text); m != nil {
		fields := strings.Fields(strings.TrimSpace(m[1]))
		if len(fields) > 0 {
			return fields[len(fields)-1], true
		}
		return "", false
	}

	return firstOf(text, e.styleLineToken, e.styleLineLastField)
}

func (e *OVHExtractor) styleLineToken(text string) (string, bool) {
	m := ovhStyleLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	t := ovhStyleTokenRe.FindStringSubmatch(strings.TrimSpace(m[1]))
	if t == nil {
		return "", false
	}
	return t[1], true
}

func (e *OVHExtractor) styleLineLastField(text string) (string, bool) {
	m := ovhStyleLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	fields := strings.Fields(strings.TrimSpace(m[1]))
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}

// pcsSet reads the "pcs/set N1 N2 [N3]" figures. With a third number the
// first two sum to the random-sample quantity and the third is the faulty
// count; otherwise the two map directly.
func (e *OVHExtractor) pcsSet(text string, rec *domain.FlatRecord) {
	m := ovhPcsSetRe.FindStringSubmatch(text)
	if m == nil {
		return
	}

	if m[3] != "" {
		n1, err1 := strconv.Atoi(m[1])
		n2, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return
		}
		rec.RandomQty = strconv.Itoa(n1 + n2)
		rec.FaultyPcs = m[3]
		return
	}

	rec.RandomQty = m[1]
	rec.FaultyPcs = m[2]
}

// decision reads the 4-slash decision record, falling back to locating the
// first date-shaped token and searching backward from it for a 3-slash
// decision prefix ending exactly before that date. OVH dates are
// day/month/year.
func (e *OVHExtractor) decision(text string, rec *domain.FlatRecord) {
	if m := ovhDeciDateRe.FindStringSubmatch(text); m != nil {
		rec.Decision = m[2]
		rec.DecisionDate = normalize.ConvertDate(m[3], normalize.DayMonthYear)
		return
	}

	loc := ovhShortDateRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return
	}
	before := text[:loc[0]]
	if m := ovhDeciPrefixRe.FindStringSubmatch(before); m != nil {
		rec.Decision = m[2]
		rec.DecisionDate = normalize.ConvertDate(text[loc[2]:loc[3]], normalize.DayMonthYear)
	}
}

// faults captures everything between the "Description of faults" marker and
// the "Rework" marker, whitespace-collapsed and otherwise untouched.
func (e *OVHExtractor) faults(text string) (string, bool) {
	loc := ovhFaultsMarkerRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := text[loc[1]:]
	end := ovhReworkRe.FindStringIndex(rest)
	if end == nil {
		return "", false
	}

	return normalize.CollapseWhitespace(rest[:end[0]]), true
}
