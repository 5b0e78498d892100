package domain

// Family identifies the report template a claim document was produced from.
type Family string

const (
	FamilyBPH     Family = "BPH"
	FamilyOVH     Family = "OVH"
	FamilyUnknown Family = "Unknown"
)

// Sentinel values standing in for missing data. The exact literals are part
// of the serialized output contract and must not be reworded.
const (
	// NotExtracted marks a field whose patterns did not match.
	NotExtracted = "Not extracted"
	// ExtractionFailed marks every field of a document whose text
	// extraction produced no usable text.
	ExtractionFailed = "Failed to extract text"
)

// IsSentinel reports whether v is one of the missing-data sentinels.
func IsSentinel(v string) bool {
	return v == NotExtracted || v == ExtractionFailed
}
