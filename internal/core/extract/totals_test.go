package extract

import "testing"

func TestExtractTotals_LabeledFooterValues(t *testing.T) {
	footer := Lines("Subtotal: 96.65\nTax: 7.73\nGrand Total: 104.38")
	got := ExtractTotals(footer, footer, nil)
	if got.Subtotal == nil || *got.Subtotal != 96.65 {
		t.Errorf("Subtotal = %v, want 96.65", got.Subtotal)
	}
	if got.TotalTax == nil || *got.TotalTax != 7.73 {
		t.Errorf("TotalTax = %v, want 7.73", got.TotalTax)
	}
	if got.GrandTotal != 104.38 {
		t.Errorf("GrandTotal = %v, want 104.38", got.GrandTotal)
	}
}

func TestExtractTotals_SubtotalFallsBackToPartsSum(t *testing.T) {
	footer := Lines("Grand Total: 75.00")
	parts := []Part{{TotalAmount: 50.0}, {TotalAmount: 25.0}}
	got := ExtractTotals(footer, footer, parts)
	if got.Subtotal == nil || *got.Subtotal != 75.0 {
		t.Errorf("Subtotal = %v, want 75.0 (summed from parts)", got.Subtotal)
	}
	if got.GrandTotal != 75.00 {
		t.Errorf("GrandTotal = %v, want 75.00", got.GrandTotal)
	}
}

func TestExtractTotals_POSStyleStandalonePercentage(t *testing.T) {
	footer := Lines("8%\n92.59\n7.41")
	got := ExtractTotals(footer, footer, nil)
	if got.TotalTax == nil || *got.TotalTax != 7.41 {
		t.Errorf("TotalTax = %v, want 7.41 (the smaller of the two standalone amounts)", got.TotalTax)
	}
	if got.Subtotal == nil || *got.Subtotal != 92.59 {
		t.Errorf("Subtotal = %v, want 92.59", got.Subtotal)
	}
}

func TestExtractTotals_BareFooterTotalNeverReadFromFullDocument(t *testing.T) {
	footer := Lines("Thank you for shopping")
	all := Lines("Widget Total   50.00\nThank you for shopping")
	parts := []Part{{TotalAmount: 50.0}}
	got := ExtractTotals(footer, all, parts)
	if got.GrandTotal != 50.0 {
		t.Errorf("GrandTotal = %v, want 50.0 (falls back to subtotal, never scans the body for a bare 'total')", got.GrandTotal)
	}
}

func TestExtractTotals_OptionalFieldsOmittedWhenAbsent(t *testing.T) {
	footer := Lines("Grand Total: 20.00")
	got := ExtractTotals(footer, footer, nil)
	if got.ShippingCost != nil {
		t.Errorf("ShippingCost = %v, want nil", got.ShippingCost)
	}
	if got.Discount != nil {
		t.Errorf("Discount = %v, want nil", got.Discount)
	}
	if got.Tip != nil {
		t.Errorf("Tip = %v, want nil", got.Tip)
	}
}

func TestExtractTotals_NoSignalsYieldsZeroGrandTotal(t *testing.T) {
	footer := Lines("Have a nice day")
	got := ExtractTotals(footer, footer, nil)
	if got.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0", got.GrandTotal)
	}
	if got.Subtotal != nil {
		t.Errorf("Subtotal = %v, want nil", got.Subtotal)
	}
}
