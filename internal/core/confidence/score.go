// Package confidence implements the weighted five-factor scoring engine
// (C7) that rates how trustworthy an extracted Record is.
package confidence

import (
	"math"
	"strings"

	"github.com/joseph-ayodele/docparse/internal/core/extract"
)

const (
	weightOCR      = 0.15
	weightFields   = 0.35
	weightNumeric  = 0.20
	weightDocType  = 0.15
	weightKeyword  = 0.15
)

// Score reports the five sub-scores and their weighted overall, all rounded
// to 4 decimals and in [0,1], per spec.md §4.7. ocrConf is the OCR
// provider's own confidence, in [0,1]; claimedType is the document type the
// caller asserted (or that Parse settled on) for the record.
type Score struct {
	Overall float64 `json:"overall"`
	OCR     float64 `json:"ocr"`
	Fields  float64 `json:"fields"`
	Numeric float64 `json:"numeric"`
	DocType float64 `json:"doc_type"`
	Keyword float64 `json:"keyword"`
}

// Compute scores record against rawText, ocrConf, and claimedType.
func Compute(record extract.Record, rawText string, ocrConf float64, claimedType extract.DocumentType) Score {
	ocr := ocrFactor(rawText, ocrConf)
	fields := fieldsFactor(record)
	numeric := numericFactor(record)
	docType := docTypeFactor(claimedType, extract.ClassifyDocumentType(rawText))
	keyword := keywordFactor(claimedType, rawText)

	overall := weightOCR*ocr + weightFields*fields + weightNumeric*numeric +
		weightDocType*docType + weightKeyword*keyword

	return Score{
		Overall: round4(overall),
		OCR:     round4(ocr),
		Fields:  round4(fields),
		Numeric: round4(numeric),
		DocType: round4(docType),
		Keyword: round4(keyword),
	}
}

func ocrFactor(rawText string, ocrConf float64) float64 {
	wordCount := len(strings.Fields(rawText))
	return 0.6*ocrConf + 0.4*math.Min(float64(wordCount)/50, 1)
}

func fieldsFactor(r extract.Record) float64 {
	required := 0
	populated := 0.0

	check := func(ok bool) {
		required++
		if ok {
			populated++
		}
	}
	check(r.Supplier.Name != "")
	check(r.Transaction.InvoiceNumber != nil)
	check(r.Transaction.InvoiceDate != nil)
	check(r.Transaction.Currency != "")
	check(r.Totals.GrandTotal > 0)
	check(len(r.Parts) > 0)

	bonus := func(ok bool) {
		if ok {
			populated += 0.5
		}
	}
	bonus(r.Supplier.Contact.Email != "")
	bonus(r.Supplier.Contact.Phone != "")
	bonus(r.Buyer.Name != nil)

	return math.Min(populated/float64(required), 1.0)
}

func numericFactor(r extract.Record) float64 {
	if len(r.Parts) == 0 && isZeroTotals(r.Totals) {
		return 0.5
	}

	partSum := 0.0
	for _, p := range r.Parts {
		partSum += p.TotalAmount
	}
	subtotal := partSum
	if r.Totals.Subtotal != nil {
		subtotal = *r.Totals.Subtotal
	}

	reconstructed := subtotal
	reconstructed += deref(r.Totals.TotalTax)
	reconstructed += deref(r.Totals.ShippingCost)
	reconstructed += deref(r.Totals.Tip)
	reconstructed += deref(r.Totals.ServiceCharge)
	reconstructed -= deref(r.Totals.Discount)

	if r.Totals.GrandTotal == 0 {
		return 0.5
	}

	delta := math.Abs(reconstructed-r.Totals.GrandTotal) / r.Totals.GrandTotal
	switch {
	case delta < 0.01:
		return 1.0
	case delta < 0.05:
		return 0.8
	case delta < 0.15:
		return 0.6
	default:
		return 0.3
	}
}

func docTypeFactor(claimed, detected extract.DocumentType) float64 {
	if claimed == detected {
		return 1.0
	}
	if claimed != "" && detected != "" && (strings.Contains(string(claimed), string(detected)) || strings.Contains(string(detected), string(claimed))) {
		return 0.7
	}
	return 0.3
}

func keywordFactor(claimed extract.DocumentType, rawText string) float64 {
	keywords := extract.KeywordsFor(claimed)
	if len(keywords) == 0 {
		return 0.5
	}
	lower := strings.ToLower(rawText)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

func isZeroTotals(t extract.Totals) bool {
	return t.GrandTotal == 0 && t.Subtotal == nil && t.TotalTax == nil &&
		t.ShippingCost == nil && t.Tip == nil && t.ServiceCharge == nil && t.Discount == nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
