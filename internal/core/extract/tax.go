package extract

import (
	"regexp"
	"strings"
)

var taxIDLabelRe = regexp.MustCompile(`(?i)\bTax\s*ID[:\s]*([\dA-Z\-]{6,20})`)

// ExtractTaxInformation applies the ABN, ACN, GST(AU), EIN, VAT, and GSTIN
// patterns in sequence and returns the merged result, or nil when none
// matched, per spec.md §4.3.
func ExtractTaxInformation(text string) *TaxInformation {
	var t TaxInformation

	if m := ABNRe.FindStringSubmatch(text); m != nil {
		t.ABNNumber = strings.ReplaceAll(m[1], " ", "")
	}
	if m := ACNRe.FindStringSubmatch(text); m != nil {
		t.ACNNumber = strings.ReplaceAll(m[1], " ", "")
	}
	if m := GSTAURe.FindStringSubmatch(text); m != nil {
		t.GSTNumber = strings.ReplaceAll(m[1], " ", "")
	}
	if m := EINRe.FindStringSubmatch(text); m != nil {
		t.EIN = m[1]
	}
	if m := VATRe.FindStringSubmatch(text); m != nil {
		t.VATNumber = strings.TrimSpace(m[1])
	}
	if m := GSTINRe.FindStringSubmatch(text); m != nil {
		t.GSTNumber = m[1]
	}

	// A bare "Tax ID: 12-3456789" label not covered by the jurisdiction
	// patterns above still carries a generic tax identifier.
	if loc := taxIDLabelRe.FindStringSubmatchIndex(text); loc != nil {
		t.TaxID = text[loc[2]:loc[3]]
	}

	if t.IsEmpty() {
		return nil
	}
	return &t
}
