package extract

import "strings"

var bodyStartKeywords = []string{
	"description", "item", "qty", "quantity", "part no", "part #", "sku",
	"unit price", "amount", "total", "bill to", "ship to", "customer",
	"product", "service", "particular", "rate", "no.",
}

var footerStartKeywords = []string{
	"sub total", "subtotal", "total", "tax", "gst", "vat", "shipping",
	"discount", "balance", "amount due", "net amount", "gross amount",
	"grand total",
}

// Segments marks the header/body/footer split of a normalized document, per
// spec.md §4.2. Body is lines[HeaderEnd:FooterStart); Header and Footer are
// the remaining lines on either side.
type Segments struct {
	HeaderEnd   int
	FooterStart int
}

// Segment locates the header/body/footer boundaries in lines. Header-end is
// the first body-start keyword line, or the first line carrying 2+
// table-header keywords, searched within the first 25 lines; absent either
// signal it defaults to line 8. Footer-start is the first totals-keyword
// line found after 35% of the document; absent that signal it defaults to
// max(75% of the document, total-15).
func Segment(lines []string) Segments {
	n := len(lines)
	headerEnd := minInt(8, n)
	searchLimit := minInt(25, n)
	for i := 0; i < searchLimit; i++ {
		lower := strings.ToLower(lines[i])
		if containsAny(lower, bodyStartKeywords) {
			headerEnd = i
			break
		}
		if tableHeaderHits(lines[i]) >= 2 {
			headerEnd = i
			break
		}
	}
	if headerEnd > n {
		headerEnd = n
	}

	footerStart := n
	minFooterLine := int(float64(n) * 0.35)
	// The footer search must never re-examine the header/column-title row
	// itself: a table header commonly carries its own "Total" column label,
	// which would otherwise satisfy footerStartKeywords and collapse the
	// body to empty.
	if minFooterLine <= headerEnd {
		minFooterLine = headerEnd + 1
	}
	for i := minFooterLine; i < n; i++ {
		lower := strings.ToLower(lines[i])
		if containsAny(lower, footerStartKeywords) {
			footerStart = i
			break
		}
	}
	if footerStart == n {
		byPercent := int(float64(n) * 0.75)
		byTail := n - 15
		footerStart = maxInt(byPercent, byTail)
		if footerStart < headerEnd {
			footerStart = n
		}
		if footerStart > n {
			footerStart = n
		}
	}
	if footerStart < headerEnd {
		footerStart = headerEnd
	}

	return Segments{HeaderEnd: headerEnd, FooterStart: footerStart}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
