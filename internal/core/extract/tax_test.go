package extract

import "testing"

func TestExtractTaxInformation_ABN(t *testing.T) {
	tax := ExtractTaxInformation("Acme Pty Ltd\nABN: 51 824 753 556\nThank you")
	if tax == nil {
		t.Fatal("expected tax information, got nil")
	}
	if tax.ABNNumber != "51824753556" {
		t.Errorf("ABNNumber = %q, want 51824753556", tax.ABNNumber)
	}
}

func TestExtractTaxInformation_EIN(t *testing.T) {
	tax := ExtractTaxInformation("Acme Inc\nEIN: 12-3456789")
	if tax == nil {
		t.Fatal("expected tax information, got nil")
	}
	if tax.EIN != "12-3456789" {
		t.Errorf("EIN = %q, want 12-3456789", tax.EIN)
	}
}

func TestExtractTaxInformation_VAT(t *testing.T) {
	tax := ExtractTaxInformation("Acme Ltd\nVAT Number: GB 123456789")
	if tax == nil {
		t.Fatal("expected tax information, got nil")
	}
	if tax.VATNumber == "" {
		t.Error("VATNumber should not be empty")
	}
}

func TestExtractTaxInformation_GenericTaxIDFallback(t *testing.T) {
	tax := ExtractTaxInformation("Acme LLC\nTax ID: 98-7654321")
	if tax == nil {
		t.Fatal("expected tax information, got nil")
	}
	if tax.TaxID != "98-7654321" {
		t.Errorf("TaxID = %q, want 98-7654321", tax.TaxID)
	}
}

func TestExtractTaxInformation_NoneFoundReturnsNil(t *testing.T) {
	tax := ExtractTaxInformation("Just an ordinary line of text with no identifiers")
	if tax != nil {
		t.Errorf("expected nil, got %+v", tax)
	}
}
