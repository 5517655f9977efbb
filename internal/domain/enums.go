package domain

// DocumentType is the closed set of categories a document can classify into.
type DocumentType string

const (
	TypeReceipt       DocumentType = "receipt"
	TypePromotional   DocumentType = "promotional"
	TypeBillStatement DocumentType = "billStatement"
	TypeCreditCard    DocumentType = "creditCard"
	TypeInsuranceCard DocumentType = "insuranceCard"
	TypeLetter        DocumentType = "letter"
	TypeGeneric       DocumentType = "generic"
)

// AllDocumentTypes lists every document type in classification priority order.
var AllDocumentTypes = []DocumentType{
	TypePromotional,
	TypeInsuranceCard,
	TypeCreditCard,
	TypeReceipt,
	TypeBillStatement,
	TypeLetter,
	TypeGeneric,
}

// DocumentTypeDescriptions maps each type to a human-readable summary for the
// type catalog endpoint.
var DocumentTypeDescriptions = map[DocumentType]string{
	TypeReceipt:       "Proof of purchase with transaction ID and payment method",
	TypePromotional:   "Marketing materials, offers, coupons, and promotional content",
	TypeBillStatement: "Recurring service bills and statements requiring payment",
	TypeCreditCard:    "Physical payment cards (credit/debit) with PAN and expiry",
	TypeInsuranceCard: "Health/dental/vision insurance cards with member ID",
	TypeLetter:        "Personal or business correspondence with salutation and closing",
	TypeGeneric:       "Documents that don't fit other specific categories",
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	_, ok := DocumentTypeDescriptions[t]
	return ok
}

// FieldSource identifies how a field value was produced.
type FieldSource string

const (
	SourceOCR     FieldSource = "ocr"
	SourcePattern FieldSource = "pattern"
	SourceLLM     FieldSource = "llm"
)
