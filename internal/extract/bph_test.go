package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claimtab/internal/domain"
)

const bphReport = `Reclamation details report with reclamation ID = 482913
Reclamation ID | 482913 Quality defect 3
Date of delivery 01/15/24
Style No | 123456
Item No | 654321
Delivered quantity | 4800
OI China 104502 Ningbo   Textile Co Ltd Dept./Subdept.
Dept./Subdept. | 12.3
Order No | 778899
Random sample Faulty pieces 80 5
Decided by Date of decision Decision
John Smith 3/7/2025 QD45 (Q)
Comment for market internal note
Seams are twisted on several pieces.
Samples were requested.
Printed on 3/8/2025
`

func TestBPHExtract_FullReport(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract(bphReport)

	assert.Equal(t, string(domain.FamilyBPH), rec.Customer)
	assert.Equal(t, "482913", rec.ClaimNo)
	assert.Equal(t, "Quality defect", rec.Decision)
	assert.Equal(t, "123456", rec.StyleNo)
	assert.Equal(t, "654321", rec.ItemNo)
	assert.Equal(t, "4800", rec.DeliveredQty)
	assert.Equal(t, "Ningbo Textile Co Ltd", rec.SupplierName)
	assert.Equal(t, "12.3", rec.Department)
	assert.Equal(t, "778899", rec.OrderNo)
	assert.Equal(t, "80", rec.RandomQty)
	assert.Equal(t, "5", rec.FaultyPcs)
	assert.Equal(t, "3/7/25", rec.DecisionDate)
	assert.Equal(t, "Seams are twisted on several pieces.", rec.FaultDescription)
}

func TestBPHExtract_ClaimOnly(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract("Reclamation ID 123456")

	assert.Equal(t, "123456", rec.ClaimNo)
	assert.Equal(t, domain.NotExtracted, rec.Decision)
	assert.Equal(t, domain.NotExtracted, rec.StyleNo)
	assert.Equal(t, domain.NotExtracted, rec.DeliveredQty)
	assert.Equal(t, domain.NotExtracted, rec.SupplierName)
	assert.Equal(t, domain.NotExtracted, rec.DecisionDate)
	assert.Equal(t, domain.NotExtracted, rec.FaultDescription)
}

func TestBPHExtract_SixDigitQuantityRejected(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract("Delivered quantity | 480000\n")
	assert.Equal(t, domain.NotExtracted, rec.DeliveredQty)
}

func TestBPHExtract_CombinedStyleItemLine(t *testing.T) {
	text := "Style No Item No (combined)\n123456 654321\n"
	rec := NewBPHExtractor(nil).Extract(text)

	assert.Equal(t, "123456", rec.StyleNo)
	assert.Equal(t, "654321", rec.ItemNo)
}

func TestBPHExtract_CombinedDeptOrderLine(t *testing.T) {
	text := "Dept./Subdept. Order No (combined)\n12.3 778899\n"
	rec := NewBPHExtractor(nil).Extract(text)

	assert.Equal(t, "12.3", rec.Department)
	assert.Equal(t, "778899", rec.OrderNo)
}

func TestBPHExtract_DecisionDateLabeled(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract("Date of decision 12/31/2024\n")
	assert.Equal(t, "12/31/24", rec.DecisionDate)
}

func TestBPHExtract_DecisionDateAfterDecidedBy(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract("Decided by\nreview board on 1/2/24 final\n")
	assert.Equal(t, "1/2/24", rec.DecisionDate)
}

func TestBPHExtract_NumericStatusRejected(t *testing.T) {
	rec := NewBPHExtractor(nil).Extract("Reclamation ID 123456 789\nStyle No | 111222\n")

	assert.Equal(t, "123456", rec.ClaimNo)
	assert.Equal(t, domain.NotExtracted, rec.Decision)
}

func TestBPHExtract_CommentEndsAtPrintedOn(t *testing.T) {
	text := "Comment for market\nColor deviation on sleeve.\nPrinted on 3/8/2025\n"
	rec := NewBPHExtractor(nil).Extract(text)

	assert.Equal(t, "Color deviation on sleeve.", rec.FaultDescription)
}

func TestBPHExtract_CommentWithoutTerminator(t *testing.T) {
	text := "Comment for market\nBroken zipper on two pieces."
	rec := NewBPHExtractor(nil).Extract(text)

	assert.Equal(t, "Broken zipper on two pieces.", rec.FaultDescription)
}
