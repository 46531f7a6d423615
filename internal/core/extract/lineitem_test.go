package extract

import (
	"strings"
	"testing"
)

func TestParseLineItem_SimpleQuantityTimesPrice(t *testing.T) {
	part, ok := ParseLineItem("Bolts   5   50.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if part.ItemName != "Bolts" {
		t.Errorf("ItemName = %q, want Bolts", part.ItemName)
	}
	if part.Quantity != 5 {
		t.Errorf("Quantity = %v, want 5", part.Quantity)
	}
	if part.UnitPrice == nil || *part.UnitPrice != 10.0 {
		t.Errorf("UnitPrice = %v, want 10.0", part.UnitPrice)
	}
	if part.TotalAmount != 50.0 {
		t.Errorf("TotalAmount = %v, want 50.0", part.TotalAmount)
	}
}

func TestParseLineItem_ExactQuantityUnitPriceTotalMatch(t *testing.T) {
	part, ok := ParseLineItem("Washer   10   2.50   25.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if part.Quantity != 10 {
		t.Errorf("Quantity = %v, want 10", part.Quantity)
	}
	if part.UnitPrice == nil || *part.UnitPrice != 2.50 {
		t.Errorf("UnitPrice = %v, want 2.50", part.UnitPrice)
	}
	if part.TotalAmount != 25.0 {
		t.Errorf("TotalAmount = %v, want 25.0", part.TotalAmount)
	}
	if part.PositionalFallback {
		t.Error("an exact q*p=total match should not need positional fallback")
	}
}

func TestParseLineItem_TaxAmountDerivedFromPercentage(t *testing.T) {
	part, ok := ParseLineItem("Filter   2   15.00   10%   33.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if part.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", part.Quantity)
	}
	if part.UnitPrice == nil || *part.UnitPrice != 15.00 {
		t.Errorf("UnitPrice = %v, want 15.00", part.UnitPrice)
	}
	if part.TaxPercentage == nil || *part.TaxPercentage != 10 {
		t.Fatalf("TaxPercentage = %v, want 10", part.TaxPercentage)
	}
	if part.TaxAmount == nil || *part.TaxAmount != 3.00 {
		t.Errorf("TaxAmount = %v, want 3.00 (2 * 15.00 * 10%%)", part.TaxAmount)
	}
	if part.TotalAmount != 33.00 {
		t.Errorf("TotalAmount = %v, want 33.00", part.TotalAmount)
	}
}

func TestParseLineItem_DefaultTaxPercentageAppliedWhenLineHasNone(t *testing.T) {
	pct := 8.0
	part, ok := ParseLineItem("Gasket   4   5.00   20.00", &pct)
	if !ok {
		t.Fatal("expected a line item")
	}
	if part.TaxPercentage != nil {
		t.Errorf("TaxPercentage = %v, want nil (line carries no percentage of its own)", part.TaxPercentage)
	}
	if part.TaxAmount == nil || *part.TaxAmount != 1.60 {
		t.Errorf("TaxAmount = %v, want 1.60 (4 * 5.00 * 8%%)", part.TaxAmount)
	}
}

func TestParseLineItem_EmbeddedDimensionNeverMistakenForAColumnValue(t *testing.T) {
	part, ok := ParseLineItem("Hex Bolt M12 x 75mm   200   0.85   187.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if !strings.Contains(part.ItemName, "M12") {
		t.Errorf("ItemName = %q, want it to retain the M12 dimension", part.ItemName)
	}
	if part.Quantity != 200 {
		t.Errorf("Quantity = %v, want 200 (the M12/75mm digits must not pollute the numeric columns)", part.Quantity)
	}
	if part.UnitPrice == nil || *part.UnitPrice != 0.85 {
		t.Errorf("UnitPrice = %v, want 0.85", part.UnitPrice)
	}
	if part.TotalAmount != 187.00 {
		t.Errorf("TotalAmount = %v, want 187.00", part.TotalAmount)
	}
}

func TestParseLineItem_QuantityPriceTaxPercentTaxAmountTotalRow(t *testing.T) {
	part, ok := ParseLineItem("Hex Bolt M12 x 75mm   200   0.85   10   17.00   187.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if !strings.Contains(part.ItemName, "M12") {
		t.Errorf("ItemName = %q, want it to retain the M12 dimension", part.ItemName)
	}
	if part.Quantity != 200 {
		t.Errorf("Quantity = %v, want 200", part.Quantity)
	}
	if part.UnitPrice == nil || *part.UnitPrice != 0.85 {
		t.Errorf("UnitPrice = %v, want 0.85", part.UnitPrice)
	}
	if part.TaxPercentage == nil || *part.TaxPercentage != 10 {
		t.Fatalf("TaxPercentage = %v, want 10 (bare residual column, no %% suffix on the line)", part.TaxPercentage)
	}
	if part.TaxAmount == nil || *part.TaxAmount != 17.00 {
		t.Errorf("TaxAmount = %v, want 17.00", part.TaxAmount)
	}
	if part.TotalAmount != 187.00 {
		t.Errorf("TotalAmount = %v, want 187.00", part.TotalAmount)
	}
}

func TestParseLineItem_SKUExtractedAndExcludedFromNumericTokens(t *testing.T) {
	part, ok := ParseLineItem("Bracket SKU: ABC-123   3   5.00   15.00", nil)
	if !ok {
		t.Fatal("expected a line item")
	}
	if part.SKU == nil || *part.SKU != "ABC-123" {
		t.Fatalf("SKU = %v, want ABC-123", part.SKU)
	}
	if part.Quantity != 3 {
		t.Errorf("Quantity = %v, want 3 (the digits inside the SKU must not be read as a column)", part.Quantity)
	}
	if part.TotalAmount != 15.00 {
		t.Errorf("TotalAmount = %v, want 15.00", part.TotalAmount)
	}
}

func TestParseLineItem_RejectsTableHeaderLine(t *testing.T) {
	_, ok := ParseLineItem("Description   Qty   Unit Price   Total", nil)
	if ok {
		t.Error("a digit-free table header line should never parse as a line item")
	}
}

func TestParseLineItem_RejectsSummaryLine(t *testing.T) {
	_, ok := ParseLineItem("Subtotal: 45.00", nil)
	if ok {
		t.Error("a subtotal line should never parse as a line item")
	}
}

func TestParseLineItem_RejectsLineWithNoNumbers(t *testing.T) {
	_, ok := ParseLineItem("Just descriptive text", nil)
	if ok {
		t.Error("a line with no numeric tokens should never parse as a line item")
	}
}

func TestParseLineItem_RejectsZeroTotal(t *testing.T) {
	_, ok := ParseLineItem("Item   0.00", nil)
	if ok {
		t.Error("a zero total should never parse as a line item")
	}
}

func TestParseLineItem_RejectsBlankLine(t *testing.T) {
	_, ok := ParseLineItem("   ", nil)
	if ok {
		t.Error("a blank line should never parse as a line item")
	}
}
