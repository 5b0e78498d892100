package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claimtab/internal/domain"
)

const ovhReport = `Control report
1234567 OTTO
Buyin Incoming date 12/5/24 Shenzhen  Garment Works No. bowls 3
dept. 432.1
Cat.-No./Page/Block 123/45 87654321
Style No.
1,200 A 778899 Harmony
Inspection result
pcs/set 40 40 5
A / B / inspector name / 31/12/24
Description of faults
Loose threads found
Rework
`

func TestOVHExtract_FullReport(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract(ovhReport)

	assert.Equal(t, string(domain.FamilyOVH), rec.Customer)
	assert.Equal(t, "1234567", rec.ClaimNo)
	assert.Equal(t, "Shenzhen Garment Works", rec.SupplierName)
	assert.Equal(t, "432.1", rec.Department)
	assert.Equal(t, "87654321", rec.ItemNo)
	assert.Equal(t, "1200", rec.DeliveredQty)
	assert.Equal(t, "778899", rec.OrderNo)
	assert.Equal(t, "Harmony", rec.StyleNo)
	assert.Equal(t, "80", rec.RandomQty)
	assert.Equal(t, "5", rec.FaultyPcs)
	assert.Equal(t, "B", rec.Decision)
	assert.Equal(t, "12/31/24", rec.DecisionDate)
	assert.Equal(t, "Loose threads found", rec.FaultDescription)
}

func TestOVHExtract_Empty(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("nothing useful here")

	assert.Equal(t, domain.NotExtracted, rec.ClaimNo)
	assert.Equal(t, domain.NotExtracted, rec.SupplierName)
	assert.Equal(t, domain.NotExtracted, rec.StyleNo)
	assert.Equal(t, domain.NotExtracted, rec.Decision)
	assert.Equal(t, domain.NotExtracted, rec.DecisionDate)
	assert.Equal(t, domain.NotExtracted, rec.FaultDescription)
}

func TestOVHExtract_PcsSetTwoNumbers(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("pcs/set 30 2\nDescription of faults text\nRework\n")

	assert.Equal(t, "30", rec.RandomQty)
	assert.Equal(t, "2", rec.FaultyPcs)
}

func TestOVHExtract_PcsSetThreeNumbersSumsSample(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("pcs/set 25 15 4\n")

	assert.Equal(t, "40", rec.RandomQty)
	assert.Equal(t, "4", rec.FaultyPcs)
}

func TestOVHExtract_DecisionWithTrailingText(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("no structured record here\nA / B / checker / 5/6/24 trailer\n")

	assert.Equal(t, "B", rec.Decision)
	assert.Equal(t, "6/5/24", rec.DecisionDate)
}

func TestOVHExtract_DecisionAcrossLines(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("A /\nB / qc lead /\n5/6/24\n")

	assert.Equal(t, "B", rec.Decision)
	assert.Equal(t, "6/5/24", rec.DecisionDate)
}

func TestOVHExtract_DateWithoutDecisionPrefix(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("Incoming date 5/6/24 only\n")

	assert.Equal(t, domain.NotExtracted, rec.Decision)
	assert.Equal(t, domain.NotExtracted, rec.DecisionDate)
}

func TestOVHExtract_StyleNoSameLine(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("Style No. 778899 Breeze\nSomething else\n")
	assert.Equal(t, "Breeze", rec.StyleNo)
}

func TestOVHExtract_StyleNoLastTokenFallback(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("Style No. Breeze Top\nSomething else\n")
	assert.Equal(t, "Top", rec.StyleNo)
}

func TestOVHExtract_FaultsRequireReworkTerminator(t *testing.T) {
	rec := NewOVHExtractor(nil).Extract("Description of faults\nOpen seam\n")
	assert.Equal(t, domain.NotExtracted, rec.FaultDescription)
}
