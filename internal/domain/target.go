package domain

// TargetColumns is the fixed 25-column business schema, in output order.
// Spellings (including "Style NO." and "Order No.") match the downstream
// import template exactly.
var TargetColumns = []string{
	"Picture",
	"Production Type",
	"Claim Type",
	"Vendor",
	"Claim No.",
	"Claim Date",
	"Inspection Date",
	"Customer",
	"Dept.",
	"FID",
	"TEAM",
	"QC Trip Leader",
	"Style NO.",
	"Order No.",
	"Article No.",
	"Relevant shipped Qty",
	"Quality Digit (Market)",
	"Defect Code",
	"Claim Reason",
	"QC Responsibility",
	"Claim Status",
	"Validate Month",
	"Claim shipped Qty",
	"Random check in customer warehouse",
	"Re-check in warehouse",
}

// Indices into a TargetRecord for the columns populated by the mapper and
// inspected by the exporters.
const (
	ColClaimType   = 2
	ColVendor      = 3
	ColClaimNo     = 4
	ColClaimDate   = 5
	ColCustomer    = 7
	ColDept        = 8
	ColStyleNo     = 12
	ColOrderNo     = 13
	ColArticleNo   = 14
	ColShippedQty  = 15
	ColClaimReason = 18
	ColClaimStatus = 20
	ColRandomCheck = 23
)

// TargetRecord is one business-schema row, aligned with TargetColumns.
// Columns not covered by a mapping rule hold the empty string, never a
// sentinel.
type TargetRecord []string

// NewTargetRecord returns a record with every column set to empty string.
func NewTargetRecord() TargetRecord {
	return make(TargetRecord, len(TargetColumns))
}

// TargetTable is one TargetRecord per SourceTable row, same ordering.
type TargetTable []TargetRecord
