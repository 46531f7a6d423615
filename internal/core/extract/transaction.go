package extract

import (
	"regexp"
	"strings"
)

// The no|#|number alternations below are ordered longest-alternative-first
// (number before no.?) so that Go's leftmost-first alternation semantics
// don't let the shorter "no" branch partially consume "Number" and leave
// "mber" to be swept into the capture group.
var invoiceInlineRe = regexp.MustCompile(`(?i)(?:invoice\s*(?:number|no\.?|#)|tax\s*invoice\s*(?:no\.?|#)|inv\s*[#:]|e-?invoice\s*[#:])\s*[:#]?\s*([A-Za-z0-9][\w\-/]*)`)
var invoiceLabelOnlyRe = regexp.MustCompile(`(?i)^\s*(?:invoice\s*(?:number|no\.?|#)|tax\s*invoice\s*(?:no\.?|#)|inv)\s*[:#]?\s*$`)

// poInlineRe deliberately folds the "Number" alternative into the label
// group itself (mirroring the invoice pattern's own no|#|number
// alternation) so that a "PO Number: ABC-42" line captures "ABC-42" and
// never the literal word "Number" as the value. Bare "PO" requires either
// a recognized keyword (Number/No/#) or an explicit colon/hash right after
// it, so a line like "PO Box 123" is not mistaken for a label.
var poInlineRe = regexp.MustCompile(`(?i)(?:P\.?O\.?\s*(?:number|no\.?|#)\s*[:#]?|P\.?O\.?\s*[:#]|purchase\s*order\s*(?:number|no\.?|#)?\s*[:#]?)\s*([A-Za-z0-9][\w\-/]*)`)
var poLabelOnlyRe = regexp.MustCompile(`(?i)^\s*(?:P\.?O\.?\s*(?:number|no\.?|#)?|purchase\s*order\s*(?:number|no\.?|#)?)\s*[:#]?\s*$`)

var quoteInlineRe = regexp.MustCompile(`(?i)quote\s*(?:number|no\.?|#)\s*[:#]?\s*([A-Za-z0-9][\w\-/]*)`)

// The capture groups below use [\w \t] rather than \s so that a label
// near the end of a line can never swallow the following line's text:
// fullText joins lines with "\n" and Go's \s matches newlines too.
var paymentModeRe = regexp.MustCompile(`(?i)\bpayment\b\s*(?:mode|method)?\s*[:]\s*([A-Za-z][\w \t]*)`)
var paymentTermsRe = regexp.MustCompile(`(?i)\bpayment\s*terms\s*[:]?\s*([A-Za-z0-9][\w \t%./]*)`)

var transactionTimeRe = regexp.MustCompile(`(?i)\b([01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?\s*(?:[AP]M)?\b`)

var valueShapeRe = regexp.MustCompile(`^[A-Za-z0-9][\w\-/]{1,}$`)

// extractLabeledToken implements the invoice-number / PO-number extraction
// contract of spec.md §4.6: a same-line inline match first, then a
// multi-line fallback when the label sits alone on its line and a
// value-shaped token follows within 2 lines.
func extractLabeledToken(lines []string, inlineRe, labelOnlyRe *regexp.Regexp) (value string, found, fallback bool) {
	for _, line := range lines {
		if m := inlineRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true, false
		}
	}
	for i, line := range lines {
		if !labelOnlyRe.MatchString(line) {
			continue
		}
		for j := i + 1; j < len(lines) && j <= i+2; j++ {
			candidate := strings.TrimSpace(lines[j])
			if valueShapeRe.MatchString(candidate) {
				return candidate, true, true
			}
		}
	}
	return "", false, false
}

// ExtractTransaction fills in the label-driven parts of the Transaction
// record (number fields, payment fields, time) that ExtractDates does not
// cover, per spec.md §4.6.
func ExtractTransaction(lines []string) (Transaction, []string) {
	var t Transaction
	var warnings []string

	fullText := strings.Join(lines, "\n")

	if v, ok, fb := extractLabeledToken(lines, invoiceInlineRe, invoiceLabelOnlyRe); ok {
		t.InvoiceNumber = ptr(v)
		if fb {
			warnings = append(warnings, "invoice number resolved via multi-line label fallback")
		}
	}
	if v, ok, fb := extractLabeledToken(lines, poInlineRe, poLabelOnlyRe); ok {
		t.PurchaseOrderNumber = ptr(v)
		if fb {
			warnings = append(warnings, "purchase order number resolved via multi-line label fallback")
		}
	}
	if m := quoteInlineRe.FindStringSubmatch(fullText); m != nil {
		t.QuoteNumber = ptr(strings.TrimSpace(m[1]))
	}
	if m := paymentModeRe.FindStringSubmatch(fullText); m != nil {
		t.PaymentMode = ptr(strings.TrimSpace(m[1]))
	}
	if m := paymentTermsRe.FindStringSubmatch(fullText); m != nil {
		t.PaymentTerms = ptr(strings.TrimSpace(m[1]))
	}
	if m := transactionTimeRe.FindString(fullText); m != "" {
		t.TransactionTime = ptr(strings.TrimSpace(m))
	}

	return t, warnings
}
