package extract

import "testing"

func TestExtractParts_ColumnTableStrategy(t *testing.T) {
	lines := Lines(
		"ACME Corp\n" +
			"123 Main St\n" +
			"Description  Qty  Price  Total\n" +
			"Hex Bolt   10   1.00   10.00\n" +
			"Washer   5   0.50   2.50\n" +
			"Grommet   2   1.25   2.50\n" +
			"Subtotal: 15.00\n" +
			"Tax: 1.20\n" +
			"Total: 16.20",
	)
	seg := Segment(lines)
	parts, warnings := ExtractParts(lines, seg)
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3: %+v", len(parts), parts)
	}
	if parts[0].ItemName != "Hex Bolt" {
		t.Errorf("parts[0].ItemName = %q, want Hex Bolt", parts[0].ItemName)
	}
	if parts[1].ItemName != "Washer" {
		t.Errorf("parts[1].ItemName = %q, want Washer", parts[1].ItemName)
	}
	if parts[2].ItemName != "Grommet" {
		t.Errorf("parts[2].ItemName = %q, want Grommet", parts[2].ItemName)
	}
	if parts[0].PartNumber != nil {
		t.Errorf("parts[0].PartNumber = %v, want nil (a formatted price must never be read as a part number)", parts[0].PartNumber)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for a clean column table, got %v", warnings)
	}
}

func TestExtractParts_MultiLineStrategyAttachesDescription(t *testing.T) {
	lines := Lines(
		"Order Confirmation\n" +
			"Hex Bolt   200   0.85   170.00\n" +
			"Zinc-plated, grade eight\n" +
			"Wing Nut   50   2.00   100.00\n" +
			"Stainless steel",
	)
	parts := extractMultiLine(lines)
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2: %+v", len(parts), parts)
	}
	if parts[0].Description == nil || *parts[0].Description != "Zinc-plated, grade eight" {
		t.Errorf("parts[0].Description = %v, want 'Zinc-plated, grade eight'", parts[0].Description)
	}
	if parts[1].Description == nil || *parts[1].Description != "Stainless steel" {
		t.Errorf("parts[1].Description = %v, want 'Stainless steel'", parts[1].Description)
	}
}

func TestExtractVerticalForm_PartNumberDescriptionQtyPriceTotal(t *testing.T) {
	lines := Lines(
		"Part Number:\n" +
			"BR-4521\n" +
			"Description:\n" +
			"Brake Rotor Assembly\n" +
			"Qty: 2\n" +
			"Price:\n" +
			"45.00\n" +
			"Total:\n" +
			"90.00",
	)
	parts := extractVerticalForm(lines)
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1: %+v", len(parts), parts)
	}
	p := parts[0]
	if p.PartNumber == nil || *p.PartNumber != "BR-4521" {
		t.Errorf("PartNumber = %v, want BR-4521", p.PartNumber)
	}
	if p.ItemName != "Brake Rotor Assembly" {
		t.Errorf("ItemName = %q, want Brake Rotor Assembly", p.ItemName)
	}
	if p.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", p.Quantity)
	}
	if p.UnitPrice == nil || *p.UnitPrice != 45.00 {
		t.Errorf("UnitPrice = %v, want 45.00", p.UnitPrice)
	}
	if p.TotalAmount != 90.00 {
		t.Errorf("TotalAmount = %v, want 90.00", p.TotalAmount)
	}
}

func TestExtractVerticalForm_CoreDepositAddsASecondPart(t *testing.T) {
	lines := Lines(
		"Part Number:\n" +
			"BR-4521\n" +
			"Description:\n" +
			"Brake Rotor Assembly\n" +
			"Qty: 2\n" +
			"Total:\n" +
			"90.00\n" +
			"Core Deposit:\n" +
			"15.00",
	)
	parts := extractVerticalForm(lines)
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2 (item + core deposit): %+v", len(parts), parts)
	}
	if parts[1].ItemName != "Core Deposit" {
		t.Errorf("parts[1].ItemName = %q, want Core Deposit", parts[1].ItemName)
	}
	if parts[1].TotalAmount != 15.00 {
		t.Errorf("parts[1].TotalAmount = %v, want 15.00", parts[1].TotalAmount)
	}
}

func TestExtractParts_WholeDocumentFallbackWarns(t *testing.T) {
	lines := Lines("Bolts   5   50.00")
	seg := Segments{HeaderEnd: 1, FooterStart: 1}
	parts, warnings := ExtractParts(lines, seg)
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(parts))
	}
	found := false
	for _, w := range warnings {
		if w == "header row not found; line items salvaged via whole-document fallback" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a whole-document fallback warning, got %v", warnings)
	}
}

func TestExtractParts_NoLineItemsYieldsEmptyResult(t *testing.T) {
	lines := Lines("Just a plain document\nwith no numbers or tables at all")
	seg := Segment(lines)
	parts, _ := ExtractParts(lines, seg)
	if len(parts) != 0 {
		t.Errorf("expected no parts, got %+v", parts)
	}
}
