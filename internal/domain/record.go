package domain

// FlatRecord is the raw per-document extraction result. Every field is always
// set: either a real value or one of the sentinels. Callers check sentinels,
// never presence.
type FlatRecord struct {
	SourceFile       string `json:"source_file"`
	Customer         string `json:"customer_name"`
	ClaimNo          string `json:"claim_no"`
	Decision         string `json:"decision"`
	StyleNo          string `json:"style_no"`
	ItemNo           string `json:"item_no"`
	DeliveredQty     string `json:"delivered_quantity"`
	SupplierName     string `json:"supplier_name"`
	Department       string `json:"dept"`
	OrderNo          string `json:"order_no"`
	RandomQty        string `json:"random_quantity"`
	FaultyPcs        string `json:"faulty_pcs"`
	DecisionDate     string `json:"date_of_decision"`
	FaultDescription string `json:"description_of_faults"`
}

// SourceColumns is the header row of the source table, in output order.
// Column names match the shipped system byte for byte.
var SourceColumns = []string{
	"Source File",
	"customer_name",
	"Claim no",
	"Decision",
	"Style No",
	"Item No",
	"Delivered quantity",
	"Supplier Name",
	"Dept.",
	"Order No",
	"Random quantity",
	"Faulty pcs",
	"Date of decision",
	"Description of faults",
}

// FlatFieldNames lists the extractable fields (customer_name excluded) in
// source-table order. Used for per-field extraction statistics.
var FlatFieldNames = []string{
	"Claim no",
	"Decision",
	"Style No",
	"Item No",
	"Delivered quantity",
	"Supplier Name",
	"Dept.",
	"Order No",
	"Random quantity",
	"Faulty pcs",
	"Date of decision",
	"Description of faults",
}

// NewFlatRecord returns a record seeded with NotExtracted for every field and
// the given family as customer tag.
func NewFlatRecord(family Family) FlatRecord {
	return FlatRecord{
		Customer:         string(family),
		ClaimNo:          NotExtracted,
		Decision:         NotExtracted,
		StyleNo:          NotExtracted,
		ItemNo:           NotExtracted,
		DeliveredQty:     NotExtracted,
		SupplierName:     NotExtracted,
		Department:       NotExtracted,
		OrderNo:          NotExtracted,
		RandomQty:        NotExtracted,
		FaultyPcs:        NotExtracted,
		DecisionDate:     NotExtracted,
		FaultDescription: NotExtracted,
	}
}

// FailedFlatRecord returns a record for a document whose text extraction
// failed entirely: every field carries ExtractionFailed and the customer tag
// is Unknown.
func FailedFlatRecord() FlatRecord {
	return FlatRecord{
		Customer:         string(FamilyUnknown),
		ClaimNo:          ExtractionFailed,
		Decision:         ExtractionFailed,
		StyleNo:          ExtractionFailed,
		ItemNo:           ExtractionFailed,
		DeliveredQty:     ExtractionFailed,
		SupplierName:     ExtractionFailed,
		Department:       ExtractionFailed,
		OrderNo:          ExtractionFailed,
		RandomQty:        ExtractionFailed,
		FaultyPcs:        ExtractionFailed,
		DecisionDate:     ExtractionFailed,
		FaultDescription: ExtractionFailed,
	}
}

// Row converts the record to a string slice aligned with SourceColumns.
func (r *FlatRecord) Row() []string {
	return []string{
		r.SourceFile,
		r.Customer,
		r.ClaimNo,
		r.Decision,
		r.StyleNo,
		r.ItemNo,
		r.DeliveredQty,
		r.SupplierName,
		r.Department,
		r.OrderNo,
		r.RandomQty,
		r.FaultyPcs,
		r.DecisionDate,
		r.FaultDescription,
	}
}

// FieldValue returns the value of a field by its FlatFieldNames name.
// Unknown names return the empty string.
func (r *FlatRecord) FieldValue(name string) string {
	switch name {
	case "Claim no":
		return r.ClaimNo
	case "Decision":
		return r.Decision
	case "Style No":
		return r.StyleNo
	case "Item No":
		return r.ItemNo
	case "Delivered quantity":
		return r.DeliveredQty
	case "Supplier Name":
		return r.SupplierName
	case "Dept.":
		return r.Department
	case "Order No":
		return r.OrderNo
	case "Random quantity":
		return r.RandomQty
	case "Faulty pcs":
		return r.FaultyPcs
	case "Date of decision":
		return r.DecisionDate
	case "Description of faults":
		return r.FaultDescription
	}
	return ""
}

// SourceTable is one row per input document, in input order.
type SourceTable []FlatRecord
