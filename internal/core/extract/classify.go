package extract

import "strings"

// docTypeOrder lists the document types in tie-break order (the keyword set
// per type lives in docTypeKeywords): classify_document_type returns the first type
// reaching the highest score, per spec.md §4.3.
var docTypeOrder = []DocumentType{
	DocumentInvoice,
	DocumentReceipt,
	DocumentPurchaseOrder,
	DocumentWorkOrder,
	DocumentBill,
	DocumentStatement,
	DocumentQuote,
	DocumentCMMS,
	DocumentSupplier,
	DocumentContract,
}

var docTypeKeywords = map[DocumentType][]string{
	DocumentInvoice:       {"invoice", "tax invoice", "bill to", "invoice no", "invoice number", "invoice date"},
	DocumentReceipt:       {"receipt", "cash tendered", "change due", "thank you for shopping", "register", "cashier"},
	DocumentPurchaseOrder: {"purchase order", "po number", "po#", "p.o.#", "vendor", "ship to"},
	DocumentWorkOrder:     {"work order", "technician", "labor", "service requested", "work performed"},
	DocumentBill:          {"bill", "amount due", "account number", "billing period", "statement date"},
	DocumentStatement:     {"statement", "opening balance", "closing balance", "statement period"},
	DocumentQuote:         {"quote", "quotation", "estimate", "valid until", "proposal"},
	DocumentCMMS:          {"maintenance", "work order", "asset", "downtime", "preventive maintenance", "ticket"},
	DocumentSupplier:      {"supplier", "vendor profile", "w-9", "remittance"},
	DocumentContract:      {"agreement", "contract", "terms and conditions", "party of the first part", "whereas"},
}

// ClassifyDocumentType scores text against each curated keyword set and
// returns the highest-scoring type, using docTypeOrder as the tie-break.
// Returns DocumentGeneric iff every type scores zero.
func ClassifyDocumentType(text string) DocumentType {
	lower := strings.ToLower(text)

	best := DocumentGeneric
	bestScore := 0
	for _, dt := range docTypeOrder {
		score := 0
		for _, kw := range docTypeKeywords[dt] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = dt
		}
	}
	return best
}

// KeywordsFor returns the curated keyword list for a document type, used by
// the confidence engine's keyword factor (C7).
func KeywordsFor(dt DocumentType) []string {
	return docTypeKeywords[dt]
}
