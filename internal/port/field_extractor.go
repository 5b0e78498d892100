package port

import "claimtab/internal/domain"

// FieldExtractor turns the plain text of one document into a FlatRecord.
// Extract never fails: fields whose patterns did not match keep the
// NotExtracted sentinel, and internal errors are swallowed per field.
type FieldExtractor interface {
	Family() domain.Family
	Extract(text string) domain.FlatRecord
}
