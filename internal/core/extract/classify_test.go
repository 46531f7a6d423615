package extract

import "testing"

func TestClassifyDocumentType(t *testing.T) {
	cases := []struct {
		name, text string
		want       DocumentType
	}{
		{
			"invoice",
			"INVOICE\nInvoice No: INV-2024-0042\nInvoice Date: 01/15/2024\nBill To:\nXYZ Supplies Inc.",
			DocumentInvoice,
		},
		{
			"receipt",
			"WALMART SUPERCENTER\nCashier: Jane\nCash Tendered 25.00\nChange Due 3.12\nThank you for shopping",
			DocumentReceipt,
		},
		{
			"purchase order",
			"PURCHASE ORDER\nPO Number: PO-2024-007\nVendor: ACME\nShip To: Warehouse 4",
			DocumentPurchaseOrder,
		},
		{
			"work order",
			"WORK ORDER\nTechnician: J. Smith\nWork Performed: replaced belt\nLabor: 2 hours",
			DocumentWorkOrder,
		},
		{
			"generic when no keywords match",
			"a plain block of unrelated text with no business vocabulary at all",
			DocumentGeneric,
		},
		{
			"empty text is generic",
			"",
			DocumentGeneric,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyDocumentType(c.text); got != c.want {
				t.Errorf("ClassifyDocumentType(%q) = %q, want %q", c.text, got, c.want)
			}
		})
	}
}

func TestClassifyDocumentType_TieBreakIsInsertionOrder(t *testing.T) {
	// "work order" is a keyword shared by both WorkOrder and CMMS; with a
	// single shared hit and nothing else, the earlier entry in docTypeOrder
	// (WorkOrder) must win the tie.
	got := ClassifyDocumentType("work order")
	if got != DocumentWorkOrder {
		t.Errorf("ClassifyDocumentType(work order) = %q, want %q (tie-break order)", got, DocumentWorkOrder)
	}
}

func TestKeywordsFor(t *testing.T) {
	if kw := KeywordsFor(DocumentInvoice); len(kw) == 0 {
		t.Error("KeywordsFor(invoice) returned no keywords")
	}
	if kw := KeywordsFor(DocumentGeneric); len(kw) != 0 {
		t.Errorf("KeywordsFor(generic) = %v, want empty", kw)
	}
}
