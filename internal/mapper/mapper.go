// Package mapper converts the raw extraction table into the 25-column
// business schema expected by the downstream claim import. Every value
// passes through normalize.SafeValue, so missing-data sentinels become
// deliberate blanks rather than literal text.
package mapper

import (
	"claimtab/internal/domain"
	"claimtab/internal/normalize"
)

// MapTable maps the source table row for row, preserving order. An empty
// input yields an empty table (the fixed schema lives in
// domain.TargetColumns).
func MapTable(src domain.SourceTable) domain.TargetTable {
	target := make(domain.TargetTable, 0, len(src))
	for i := range src {
		target = append(target, mapRecord(&src[i]))
	}
	return target
}

// mapRecord derives one business-schema row from one FlatRecord. Columns not
// covered by a rule stay empty.
func mapRecord(rec *domain.FlatRecord) domain.TargetRecord {
	row := domain.NewTargetRecord()

	row[domain.ColClaimType] = claimType(rec.Decision)
	// Every converted claim enters the system in Failure status.
	row[domain.ColClaimStatus] = "Failure"

	row[domain.ColVendor] = normalize.SafeValue(rec.SupplierName)
	row[domain.ColClaimNo] = normalize.SafeValue(rec.ClaimNo)
	row[domain.ColClaimDate] = normalize.SafeValue(rec.DecisionDate)
	row[domain.ColCustomer] = normalize.SafeValue(rec.Customer)
	row[domain.ColDept] = normalize.SafeValue(rec.Department)
	row[domain.ColStyleNo] = normalize.SafeValue(rec.StyleNo)
	row[domain.ColOrderNo] = normalize.SafeValue(rec.OrderNo)
	row[domain.ColArticleNo] = normalize.SafeValue(rec.ItemNo)
	row[domain.ColShippedQty] = normalize.SafeValue(rec.DeliveredQty)
	row[domain.ColClaimReason] = normalize.SafeValue(rec.FaultDescription)

	row[domain.ColRandomCheck] = combineFaultyRandom(rec)

	return row
}

// claimType derives the claim type from the sanitized decision. An empty
// decision (including sentinel-bearing ones) defaults to "Claim"; the known
// quality-deviation codes map to "Complaint".
func claimType(decision string) string {
	v := normalize.SafeValue(decision)
	if v == "" {
		return "Claim"
	}
	if v == "QD45 (Q)" || v == "Q" {
		return "Complaint"
	}
	return "Claim"
}

// combineFaultyRandom builds the "faulty/random" check figure. Both values
// must be real (non-empty, non-sentinel) or the column stays blank.
func combineFaultyRandom(rec *domain.FlatRecord) string {
	faulty := normalize.SafeValue(rec.FaultyPcs)
	random := normalize.SafeValue(rec.RandomQty)
	if faulty == "" || random == "" || faulty == domain.NotExtracted || random == domain.NotExtracted {
		return ""
	}
	return faulty + "/" + random
}
