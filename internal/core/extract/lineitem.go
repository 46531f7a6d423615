package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var summaryLineRe = regexp.MustCompile(`(?i)\b(sub\s*total|subtotal|total|tax|gst|vat|hst|shipping|discount|balance|amount\s*due|paid|change)\b`)

var tableHeaderKeywords = []string{
	"description", "item", "qty", "quantity", "part no", "part #", "sku",
	"unit price", "amount", "total", "product", "service", "particular", "rate",
}

var columnSplitRe = regexp.MustCompile(`\s{2,}`)
var leadingRowNumberRe = regexp.MustCompile(`^\s*\d+[.)\s]+`)
var twoLettersRe = regexp.MustCompile(`[A-Za-z]{2}`)
var trailingNumericClusterRe = regexp.MustCompile(`[\s$]*-?\d[\d,.\s%$]*$`)
var numericTokenRe = regexp.MustCompile(`-?\d{1,3}(?:,\d{3})*(?:\.\d+)?%?`)

type numToken struct {
	value     float64
	isPercent bool
	start     int
	end       int
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// extractNumericTokens returns every numeric token in line, excluding any
// span overlapped by skuStart/skuEnd (pass -1,-1 when no SKU was found).
// A token immediately touching a letter on either side (as in "M12" or
// "75mm") is a measurement or model-number fragment, not a standalone
// column value, and is skipped.
func extractNumericTokens(line string, skuStart, skuEnd int) []numToken {
	var out []numToken
	for _, loc := range numericTokenRe.FindAllStringIndex(line, -1) {
		if skuStart >= 0 && loc[0] < skuEnd && loc[1] > skuStart {
			continue
		}
		if loc[0] > 0 && isASCIILetter(line[loc[0]-1]) {
			continue
		}
		if loc[1] < len(line) && isASCIILetter(line[loc[1]]) {
			continue
		}
		raw := line[loc[0]:loc[1]]
		isPct := strings.HasSuffix(raw, "%")
		cleaned := strings.TrimSuffix(raw, "%")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		out = append(out, numToken{value: v, isPercent: isPct, start: loc[0], end: loc[1]})
	}
	return out
}

// findSKU locates a labeled or bare SKU in line. SKU_LABELED wins over
// SKU_BARE, per spec.md §4.3.
func findSKU(line string) (sku string, start, end int) {
	if loc := SKULabeledRe.FindStringSubmatchIndex(line); loc != nil {
		return line[loc[2]:loc[3]], loc[2], loc[3]
	}
	if loc := SKUBareRe.FindStringIndex(line); loc != nil {
		return line[loc[0]:loc[1]], loc[0], loc[1]
	}
	return "", -1, -1
}

// tableHeaderHits counts how many curated table-header keywords occur in
// line (case-insensitive, substring).
func tableHeaderHits(line string) int {
	lower := strings.ToLower(line)
	n := 0
	for _, kw := range tableHeaderKeywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// ParseLineItem parses a single body line into a Part, or returns
// (Part{}, false) when the line is not a line item, per spec.md §4.3 step
// list. defaultTaxPct, when non-nil, is used in step 9 when the line
// carries no tax percentage of its own.
func ParseLineItem(line string, defaultTaxPct *float64) (Part, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Part{}, false
	}
	if summaryLineRe.MatchString(trimmed) {
		return Part{}, false
	}
	if tableHeaderHits(trimmed) >= 2 && !containsDigit(trimmed) {
		return Part{}, false
	}

	sku, skuStart, skuEnd := findSKU(trimmed)
	tokens := extractNumericTokens(trimmed, skuStart, skuEnd)
	if len(tokens) == 0 {
		return Part{}, false
	}

	// Tax percentage: a %-suffixed token, else a bare TAX_PERCENT match
	// elsewhere in the line.
	var taxPct *float64
	nonPercent := make([]numToken, 0, len(tokens))
	for _, t := range tokens {
		if t.isPercent {
			if taxPct == nil {
				v := t.value
				taxPct = &v
			}
			continue
		}
		nonPercent = append(nonPercent, t)
	}
	if taxPct == nil {
		if m := TaxPercentRe.FindStringSubmatch(trimmed); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				taxPct = &v
			}
		}
	}

	if len(nonPercent) == 0 {
		return Part{}, false
	}

	// Rightmost non-percentage numeric token is total_amount.
	last := nonPercent[len(nonPercent)-1]
	total := last.value
	if total <= 0 || total > 9999999 {
		return Part{}, false
	}
	candidates := nonPercent[:len(nonPercent)-1]

	name := candidateName(trimmed, last.start)
	if sku != "" {
		name = strings.TrimSpace(strings.Replace(name, sku, "", 1))
	}
	name = leadingRowNumberRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if !twoLettersRe.MatchString(name) {
		return Part{}, false
	}

	part := Part{
		ItemName:      name,
		TotalAmount:   round4(total),
		Quantity:      1,
		TaxPercentage: taxPct,
	}
	if sku != "" {
		part.SKU = ptr(sku)
	}

	quantity, unitPrice, taxAmount, impliedTaxPct, positional := disambiguate(candidates, total)
	if quantity > 0 {
		part.Quantity = round4(quantity)
	}
	if unitPrice != nil {
		part.UnitPrice = ptr(round4(*unitPrice))
	}
	if taxAmount != nil {
		part.TaxAmount = ptr(round4(*taxAmount))
	}
	if taxPct == nil && impliedTaxPct != nil {
		taxPct = impliedTaxPct
		part.TaxPercentage = taxPct
	}
	part.PositionalFallback = positional

	if part.UnitPrice == nil && part.Quantity > 0 {
		part.UnitPrice = ptr(round4(total / part.Quantity))
	}
	if part.TaxAmount == nil {
		pct := taxPct
		if pct == nil {
			pct = defaultTaxPct
		}
		if pct != nil && part.UnitPrice != nil {
			part.TaxAmount = ptr(round4(part.Quantity * (*part.UnitPrice) * (*pct) / 100))
		}
	}

	return part, true
}

// candidateName picks the line's item-name candidate: the first
// 2+-space-delimited segment containing >=2 consecutive letters, or (if
// none) the line with its trailing numeric cluster stripped.
func candidateName(line string, totalStart int) string {
	segments := columnSplitRe.Split(line, -1)
	for _, seg := range segments {
		if twoLettersRe.MatchString(seg) {
			return strings.TrimSpace(seg)
		}
	}
	stripped := trailingNumericClusterRe.ReplaceAllString(line, "")
	if stripped == "" && totalStart > 0 {
		stripped = line[:totalStart]
	}
	return strings.TrimSpace(stripped)
}

// disambiguate resolves quantity/unit_price (and any leftover tax_amount /
// implied tax_percentage) from the numeric tokens preceding total, per
// spec.md §4.3 step 7. With more than two candidates a row can carry its tax
// split as bare numbers rather than a "N%" token (e.g. "200 0.85 10 17.00
// 187.00": qty, price, tax_percentage, tax_amount, total). The search below
// tries every quantity/price pair plus, when a third candidate closes the
// gap to total on its own, treats that third value as tax_amount and any
// remaining small residual as the implied tax_percentage.
func disambiguate(candidates []numToken, total float64) (quantity float64, unitPrice, taxAmount, impliedTaxPct *float64, positional bool) {
	switch len(candidates) {
	case 0:
		return 0, nil, nil, nil, false

	case 1:
		n := candidates[0].value
		if isPlausibleQuantity(n) && total/n >= 0.01 && !math.IsInf(total/n, 0) {
			up := total / n
			return n, &up, nil, nil, false
		}
		return 0, &candidates[0].value, nil, nil, false

	default:
		denom := total
		if denom < 1 {
			denom = 1
		}

		bestI, bestJ, bestK, bestErr := -1, -1, -1, math.MaxFloat64
		for i := range candidates {
			for j := range candidates {
				if i == j {
					continue
				}
				base := candidates[i].value * candidates[j].value

				if err := math.Abs(base-total) / denom; err < bestErr {
					bestErr, bestI, bestJ, bestK = err, i, j, -1
				}

				for k := range candidates {
					if k == i || k == j {
						continue
					}
					if err := math.Abs(base+candidates[k].value-total) / denom; err < bestErr {
						bestErr, bestI, bestJ, bestK = err, i, j, k
					}
				}
			}
		}

		if bestErr < 0.05 {
			q, p := candidates[bestI].value, candidates[bestJ].value
			var taxAmt, taxPct *float64
			if bestK >= 0 {
				v := candidates[bestK].value
				taxAmt = &v
				for m := range candidates {
					if m == bestI || m == bestJ || m == bestK {
						continue
					}
					if candidates[m].value > 0 && candidates[m].value <= 100 {
						pv := candidates[m].value
						taxPct = &pv
						break
					}
				}
			}
			return q, &p, taxAmt, taxPct, false
		}

		// Positional fallback: first small integer (<10000) is quantity,
		// rightmost non-quantity number is unit_price.
		qIdx := -1
		for i, c := range candidates {
			if isPlausibleQuantity(c.value) {
				qIdx = i
				break
			}
		}
		if qIdx == -1 {
			up := candidates[len(candidates)-1].value
			return 0, &up, nil, nil, true
		}
		q := candidates[qIdx].value
		pIdx := len(candidates) - 1
		if pIdx == qIdx {
			pIdx--
		}
		if pIdx < 0 {
			up := total / q
			return q, &up, nil, nil, true
		}
		up := candidates[pIdx].value
		return q, &up, nil, nil, true
	}
}

func isPlausibleQuantity(n float64) bool {
	return n > 0 && n < 10000 && n == math.Trunc(n)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
