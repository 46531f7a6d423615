package extract

import (
	"regexp"
	"strings"
)

var subtotalLabelRe = regexp.MustCompile(`(?i)\bsub\s*total\b[:\s]*`)
var shippingLabelRe = regexp.MustCompile(`(?i)\b(?:shipping|delivery)(?:\s*cost|\s*charge)?\b[:\s]*`)
var discountLabelRe = regexp.MustCompile(`(?i)\bdiscount\b[:\s]*`)
var tipLabelRe = regexp.MustCompile(`(?i)\btip\b[:\s]*`)
var serviceChargeLabelRe = regexp.MustCompile(`(?i)\bservice\s*charge\b[:\s]*`)
var amountPaidLabelRe = regexp.MustCompile(`(?i)\b(?:amount\s*paid|paid)\b[:\s]*`)
var balanceDueLabelRe = regexp.MustCompile(`(?i)\bbalance\s*due\b[:\s]*`)

var totalTaxLabelRe = regexp.MustCompile(`(?i)\btotal\s*(?:gst|tax|vat)\b[:\s]*`)
var genericTaxLabelRe = regexp.MustCompile(`(?i)\b(?:gst|tax|vat)\b[:\s]*`)
var pctStandaloneRe = regexp.MustCompile(`(?i)^\s*(?:pct\s*)?\d+(?:\.\d+)?\s*%\s*$`)

var grandTotalLabelRe = regexp.MustCompile(`(?i)\b(?:grand\s*total|total\s*amount\s*due|total\s*due)\b[:\s]*`)
var amountDueLabelRe = regexp.MustCompile(`(?i)\b(?:amount\s*due|balance\s*due)\b[:\s]*`)
var posAmountLabelRe = regexp.MustCompile(`(?i)\bamount\s*[:]\s*`)
var footerTotalLabelRe = regexp.MustCompile(`(?i)\btotal\b[:\s]*`)

// labeledAmountPreferFooter tries footer lines first, then the whole
// document, per spec.md §4.6's "prefer footer text, fall back to full
// text" rule.
func labeledAmountPreferFooter(footer, all []string, label *regexp.Regexp) (float64, bool) {
	if v, ok := ExtractLabeledAmount(footer, label); ok {
		return v, true
	}
	return ExtractLabeledAmount(all, label)
}

// posStyleTax recognizes the POS-style standalone-percentage pattern: a
// line carrying just a tax percentage, followed by two standalone monetary
// lines that are subtotal and tax (the smaller of the two is tax), per
// spec.md §4.6.
func posStyleTax(lines []string) (subtotal, tax float64, ok bool) {
	for i, line := range lines {
		if !pctStandaloneRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		var amounts []float64
		for j := i + 1; j < len(lines) && len(amounts) < 2; j++ {
			t := strings.TrimSpace(lines[j])
			if t == "" {
				continue
			}
			if monetaryLineRe.MatchString(t) {
				if v, ok2 := firstAmount(t); ok2 {
					amounts = append(amounts, v)
				}
			}
		}
		if len(amounts) == 2 {
			a, b := amounts[0], amounts[1]
			if a <= b {
				return b, a, true
			}
			return a, b, true
		}
	}
	return 0, 0, false
}

// ExtractTotals assembles the Totals record, per spec.md §4.6's totals
// extraction specifics.
func ExtractTotals(footer, all []string, parts []Part) Totals {
	var t Totals

	if v, ok := labeledAmountPreferFooter(footer, all, subtotalLabelRe); ok {
		t.Subtotal = ptr(round4(v))
	} else {
		sum := 0.0
		for _, p := range parts {
			sum += p.TotalAmount
		}
		if sum > 0 {
			t.Subtotal = ptr(round4(sum))
		}
	}

	if posSub, posTax, ok := posStyleTax(footer); ok {
		t.TotalTax = ptr(round4(posTax))
		if t.Subtotal == nil {
			t.Subtotal = ptr(round4(posSub))
		}
	} else if posSub, posTax, ok := posStyleTax(all); ok {
		t.TotalTax = ptr(round4(posTax))
		if t.Subtotal == nil {
			t.Subtotal = ptr(round4(posSub))
		}
	} else if v, ok := labeledAmountPreferFooter(footer, all, totalTaxLabelRe); ok {
		t.TotalTax = ptr(round4(v))
	} else if v, ok := labeledAmountPreferFooter(footer, all, genericTaxLabelRe); ok {
		t.TotalTax = ptr(round4(v))
	}

	if v, ok := labeledAmountPreferFooter(footer, all, shippingLabelRe); ok {
		t.ShippingCost = ptr(round4(v))
	}
	if v, ok := labeledAmountPreferFooter(footer, all, discountLabelRe); ok {
		t.Discount = ptr(round4(v))
	}
	if v, ok := labeledAmountPreferFooter(footer, all, tipLabelRe); ok {
		t.Tip = ptr(round4(v))
	}
	if v, ok := labeledAmountPreferFooter(footer, all, serviceChargeLabelRe); ok {
		t.ServiceCharge = ptr(round4(v))
	}
	if v, ok := labeledAmountPreferFooter(footer, all, amountPaidLabelRe); ok {
		t.AmountPaid = ptr(round4(v))
	}
	if v, ok := labeledAmountPreferFooter(footer, all, balanceDueLabelRe); ok {
		t.BalanceDue = ptr(round4(v))
	}

	t.GrandTotal = grandTotalPriority(footer, all, t.Subtotal)
	return t
}

// grandTotalPriority implements the §4.6 priority chain: grand total /
// total amount due / total due, then amount due / balance due, then a
// POS-style "Amount :" line, then a footer-only word-boundary "total"
// (never matched against the full document, to avoid picking up a
// line-item's own "Total" column), then subtotal, then 0.
func grandTotalPriority(footer, all []string, subtotal *float64) float64 {
	if v, ok := labeledAmountPreferFooter(footer, all, grandTotalLabelRe); ok {
		return round4(v)
	}
	if v, ok := labeledAmountPreferFooter(footer, all, amountDueLabelRe); ok {
		return round4(v)
	}
	if v, ok := labeledAmountPreferFooter(footer, all, posAmountLabelRe); ok {
		return round4(v)
	}
	if v, ok := ExtractLabeledAmount(footer, footerTotalLabelRe); ok {
		return round4(v)
	}
	if subtotal != nil {
		return round4(*subtotal)
	}
	return 0
}
