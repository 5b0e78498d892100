// Package extract implements the per-family field extractors. Each field is
// backed by an ordered list of pattern attempts tried in fixed sequence; the
// first successful match wins and later fallbacks are skipped. A failure in
// one field never aborts the rest of the record.
package extract

import (
	"log/slog"
	"regexp"
)

// attempt tries to pull one field value out of the document text. The second
// result is false when the pattern did not match.
type attempt func(text string) (string, bool)

// firstOf runs attempts in order and returns the first successful value.
func firstOf(text string, attempts ...attempt) (string, bool) {
	for _, try := range attempts {
		if v, ok := try(text); ok {
			return v, true
		}
	}
	return "", false
}

// group returns an attempt yielding capture group n of re.
func group(re *regexp.Regexp, n int) attempt {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil || n >= len(m) {
			return "", false
		}
		return m[n], true
	}
}

// groupEach returns one attempt per pattern, all yielding capture group n,
// preserving pattern order.
func groupEach(res []*regexp.Regexp, n int) []attempt {
	attempts := make([]attempt, len(res))
	for i, re := range res {
		attempts[i] = group(re, n)
	}
	return attempts
}

// guard runs one field extraction, recovering any panic so a malformed
// document cannot take down the remaining fields of the record.
func guard(logger *slog.Logger, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("field extraction recovered",
				slog.String("field", field),
				slog.Any("panic", r))
		}
	}()
	fn()
}

// earliestIndex returns the smallest start index of any pattern in text, or
// -1 when none match.
func earliestIndex(text string, patterns []*regexp.Regexp) int {
	idx := -1
	for _, re := range patterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if idx == -1 || loc[0] < idx {
			idx = loc[0]
		}
	}
	return idx
}
