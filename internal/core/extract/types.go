// Package extract implements the rule-based OCR-text-to-record parser: text
// normalization, the pattern library, the primitive extractors, document
// segmentation, the line-item extraction strategies, and the assembler that
// ties them into a canonical Record.
package extract

import "time"

// DocumentType classifies the kind of business document a Record was parsed
// from.
type DocumentType string

const (
	DocumentInvoice        DocumentType = "invoice"
	DocumentReceipt        DocumentType = "receipt"
	DocumentPurchaseOrder  DocumentType = "purchase_order"
	DocumentWorkOrder      DocumentType = "work_order"
	DocumentBill           DocumentType = "bill"
	DocumentStatement      DocumentType = "statement"
	DocumentQuote          DocumentType = "quote"
	DocumentCMMS           DocumentType = "cmms"
	DocumentSupplier       DocumentType = "supplier_document"
	DocumentContract       DocumentType = "contract"
	DocumentGeneric        DocumentType = "generic"
)

// Address is a postal address. FullAddress is always populated whenever any
// other component is present.
type Address struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country,omitempty"`
	FullAddress string `json:"full_address,omitempty"`
}

// IsEmpty reports whether no component of the address was populated.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.PostalCode == "" &&
		a.Country == "" && a.FullAddress == ""
}

// Contact holds phone/email/website details for a party.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// IsEmpty reports whether no contact field was populated.
func (c Contact) IsEmpty() bool {
	return c.Phone == "" && c.Email == "" && c.Website == ""
}

// TaxInformation carries jurisdiction-specific tax/business identifiers. At
// most one value is ever set per jurisdiction.
type TaxInformation struct {
	TaxID      string `json:"tax_id,omitempty"`
	GSTNumber  string `json:"gst_number,omitempty"`
	VATNumber  string `json:"vat_number,omitempty"`
	EIN        string `json:"ein,omitempty"`
	ABNNumber  string `json:"abn_number,omitempty"`
	ACNNumber  string `json:"acn_number,omitempty"`
}

// IsEmpty reports whether no tax identifier was populated.
func (t TaxInformation) IsEmpty() bool {
	return t.TaxID == "" && t.GSTNumber == "" && t.VATNumber == "" &&
		t.EIN == "" && t.ABNNumber == "" && t.ACNNumber == ""
}

// Coordinates is an optional geolocation hint for a supplier.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Supplier is the document's issuing party.
type Supplier struct {
	Name           string          `json:"name"`
	Address        Address         `json:"address"`
	Contact        Contact         `json:"contact"`
	TaxInformation *TaxInformation `json:"tax_information,omitempty"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`
}

// Buyer is the document's receiving party.
type Buyer struct {
	Name    *string  `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
	Contact *Contact `json:"contact,omitempty"`
}

// Transaction carries the document's transactional metadata.
type Transaction struct {
	InvoiceNumber        *string `json:"invoice_number,omitempty"`
	PurchaseOrderNumber  *string `json:"purchase_order_number,omitempty"`
	QuoteNumber          *string `json:"quote_number,omitempty"`
	InvoiceDate          *string `json:"invoice_date,omitempty"`
	DueDate              *string `json:"due_date,omitempty"`
	TransactionDate      *string `json:"transaction_date,omitempty"`
	TransactionTime      *string `json:"transaction_time,omitempty"`
	PaymentMode          *string `json:"payment_mode,omitempty"`
	PaymentTerms         *string `json:"payment_terms,omitempty"`
	Currency             string  `json:"currency"`
}

// Part is a single line item. Quantity defaults to 1 when unknown.
type Part struct {
	ItemName                string   `json:"item_name"`
	Description             *string  `json:"description,omitempty"`
	SKU                     *string  `json:"sku,omitempty"`
	PartNumber              *string  `json:"part_number,omitempty"`
	ManufacturerPartNumber  *string  `json:"manufacturer_part_number,omitempty"`
	Unit                    *string  `json:"unit,omitempty"`
	Quantity                float64  `json:"quantity"`
	UnitPrice               *float64 `json:"unit_price,omitempty"`
	Discount                *float64 `json:"discount,omitempty"`
	TaxPercentage           *float64 `json:"tax_percentage,omitempty"`
	TaxAmount               *float64 `json:"tax_amount,omitempty"`
	TotalAmount             float64  `json:"total_amount"`
	// PositionalFallback records that quantity/unit_price could not be
	// validated against total_amount via the paired-search in parse_line_item
	// and were instead assigned positionally. ExtractParts adds a warning to
	// metadata for each such part.
	PositionalFallback bool `json:"-"`
}

// Totals is the document's monetary summary. GrandTotal defaults to 0.
type Totals struct {
	Subtotal      *float64 `json:"subtotal,omitempty"`
	TotalTax      *float64 `json:"total_tax,omitempty"`
	ShippingCost  *float64 `json:"shipping_cost,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
	Tip           *float64 `json:"tip,omitempty"`
	ServiceCharge *float64 `json:"service_charge,omitempty"`
	AmountPaid    *float64 `json:"amount_paid,omitempty"`
	BalanceDue    *float64 `json:"balance_due,omitempty"`
	GrandTotal    float64  `json:"grand_total"`
}

// Metadata describes the extraction run that produced a Record.
type Metadata struct {
	DocumentType        DocumentType `json:"document_type"`
	ConfidenceScore     float64      `json:"confidence_score"`
	ExtractionTimestamp time.Time    `json:"extraction_timestamp"`
	LanguageDetected    string       `json:"language_detected"`
	OCRProvider         *string      `json:"ocr_provider,omitempty"`
	AIProviderUsed      *string      `json:"ai_provider_used,omitempty"`
	ProcessingTimeMS    *int64       `json:"processing_time_ms,omitempty"`
	Warnings            []string     `json:"warnings,omitempty"`
}

// Record is the canonical output of Parse: an immutable, strongly-typed
// description of a business document.
type Record struct {
	Supplier    Supplier    `json:"supplier"`
	Buyer       Buyer       `json:"buyer"`
	Transaction Transaction `json:"transaction"`
	Parts       []Part      `json:"parts"`
	Totals      Totals      `json:"totals"`
	Metadata    Metadata    `json:"metadata"`
	RawText     *string     `json:"raw_text,omitempty"`
}

// Options configures Parse. Both fields are optional; when omitted they are
// derived from the text.
type Options struct {
	DocumentType DocumentType
	Language     string
}

func ptr[T any](v T) *T { return &v }
