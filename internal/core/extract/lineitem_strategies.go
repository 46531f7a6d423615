package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var pureCodeSegmentRe = regexp.MustCompile(`^[\dA-Z][\w\-/.]{2,}$`)
var alphabeticLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.,'&\-]*$`)
var monetaryLineRe = regexp.MustCompile(`^\$?\d[\d,]*\.?\d*$`)

var partNumberLabelRe = regexp.MustCompile(`(?i)^part\s*(number|no\.?|#)\s*[:.]?\s*$`)
var descriptionLabelRe = regexp.MustCompile(`(?i)^description\s*[:.]?\s*$`)
var priceLabelRe = regexp.MustCompile(`(?i)^price\s*[:.]?\s*$`)
var netLabelRe = regexp.MustCompile(`(?i)^net\s*[:.]?\s*$`)
var totalLabelRe = regexp.MustCompile(`(?i)^total\s*[:.]?\s*$`)
var coreDepositLabelRe = regexp.MustCompile(`(?i)^core\s*deposit\s*[:.]?\s*$`)
var qtyLabelRe = regexp.MustCompile(`(?i)^qty\s*[:.]?\s*$`)
var qtyInlineRe = regexp.MustCompile(`(?i)^qty\s*[:.]\s*(\d+(?:\.\d+)?)\s*$`)

type vfLabel struct {
	key string
	re  *regexp.Regexp
}

var vfLabels = []vfLabel{
	{"part_number", partNumberLabelRe},
	{"description", descriptionLabelRe},
	{"price", priceLabelRe},
	{"net", netLabelRe},
	{"total", totalLabelRe},
	{"core_deposit", coreDepositLabelRe},
	{"qty", qtyLabelRe},
}

func isAlphabeticLine(s string) bool {
	t := strings.TrimSpace(s)
	return t != "" && alphabeticLineRe.MatchString(t)
}

func isAnyVFLabel(s string) bool {
	if qtyInlineRe.MatchString(s) {
		return true
	}
	for _, lbl := range vfLabels {
		if lbl.re.MatchString(s) {
			return true
		}
	}
	return false
}

// extractColumnTable implements the column-aligned table strategy of
// spec.md §4.5.1: a header row carrying ≥2 table-header keywords, with
// line items below it up to the first footer-keyword line.
func extractColumnTable(body []string) []Part {
	headerIdx := -1
	for i, l := range body {
		if tableHeaderHits(l) >= 2 {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil
	}

	var parts []Part
	for i := headerIdx + 1; i < len(body); i++ {
		line := body[i]
		if containsAny(strings.ToLower(line), footerStartKeywords) {
			break
		}
		part, ok := ParseLineItem(line, nil)
		if !ok {
			continue
		}

		for _, seg := range columnSplitRe.Split(line, -1) {
			segT := strings.TrimSpace(seg)
			if segT != "" && segT != part.ItemName && pureCodeSegmentRe.MatchString(segT) && containsDigit(segT) && !monetaryLineRe.MatchString(segT) {
				part.PartNumber = ptr(segT)
				break
			}
		}

		if i+1 < len(body) {
			next := body[i+1]
			if isAlphabeticLine(next) && !containsAny(strings.ToLower(next), footerStartKeywords) {
				part.Description = ptr(strings.TrimSpace(next))
				i++
			}
		}

		parts = append(parts, part)
	}
	return parts
}

// extractMultiLine implements the multi-line strategy of spec.md §4.5.2:
// each body line is parsed independently, with a following pure-alphabetic
// description line or SKU-labeled line attached and consumed.
func extractMultiLine(body []string) []Part {
	var parts []Part
	i := 0
	for i < len(body) {
		part, ok := ParseLineItem(body[i], nil)
		if !ok {
			i++
			continue
		}
		j := i + 1
		if j < len(body) && isAlphabeticLine(body[j]) {
			part.Description = ptr(strings.TrimSpace(body[j]))
			j++
		}
		if j < len(body) {
			if m := SKULabeledRe.FindStringSubmatch(body[j]); m != nil {
				part.SKU = ptr(m[1])
				j++
			}
		}
		parts = append(parts, part)
		i = j
	}
	return parts
}

// extractVerticalForm implements the vertical-form strategy of spec.md
// §4.5.3, for POS/thermal-receipt layouts where every field occupies its
// own line.
func extractVerticalForm(lines []string) []Part {
	values := map[string]string{}
	valueIdx := map[string]int{}
	firstIdx, lastIdx := -1, -1

	for i, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if m := qtyInlineRe.FindStringSubmatch(t); m != nil {
			if _, ok := values["qty"]; !ok {
				values["qty"] = m[1]
				valueIdx["qty"] = i
			}
			if firstIdx == -1 {
				firstIdx = i
			}
			lastIdx = i
			continue
		}

		matched := ""
		for _, lbl := range vfLabels {
			if lbl.re.MatchString(t) {
				matched = lbl.key
				break
			}
		}
		if matched == "" {
			continue
		}
		if firstIdx == -1 {
			firstIdx = i
		}
		lastIdx = i
		if _, ok := values[matched]; ok {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			v := strings.TrimSpace(lines[j])
			if v == "" {
				continue
			}
			values[matched] = v
			valueIdx[matched] = j
			break
		}
	}

	if len(values) < 2 {
		return nil
	}

	description := values["description"]
	partNumber := values["part_number"]
	if description == "" && firstIdx >= 0 {
		for i := firstIdx; i <= lastIdx && i < len(lines); i++ {
			t := strings.TrimSpace(lines[i])
			if t == "" || t == partNumber || isAnyVFLabel(t) {
				continue
			}
			if isAlphabeticLine(t) {
				description = t
				break
			}
		}
	}
	if description == "" && partNumber == "" {
		return nil
	}

	name := description
	if name == "" {
		name = partNumber
	}

	part := Part{ItemName: name, Quantity: 1}
	if description != "" {
		part.Description = ptr(description)
	}
	if partNumber != "" {
		part.PartNumber = ptr(partNumber)
	}
	if qtyStr, ok := values["qty"]; ok {
		if v, err := strconv.ParseFloat(qtyStr, 64); err == nil {
			part.Quantity = v
		}
	}
	if priceStr, ok := values["price"]; ok {
		if v, ok2 := firstAmount(priceStr); ok2 {
			part.UnitPrice = ptr(round4(v))
		}
	}

	hasTotal := false
	if totalStr, ok := values["total"]; ok {
		if v, ok2 := firstAmount(totalStr); ok2 {
			part.TotalAmount = round4(v)
			hasTotal = true
		}
	} else if netStr, ok := values["net"]; ok {
		if v, ok2 := firstAmount(netStr); ok2 {
			part.TotalAmount = round4(v)
		}
	}
	if part.TotalAmount <= 0 {
		return nil
	}

	parts := []Part{part}

	if depositStr, ok := values["core_deposit"]; ok {
		if depositVal, ok2 := firstAmount(depositStr); ok2 {
			if depositVal <= 2 && hasTotal {
				for i := valueIdx["total"] + 1; i < len(lines); i++ {
					t := strings.TrimSpace(lines[i])
					if t == "" {
						continue
					}
					if monetaryLineRe.MatchString(t) {
						if v, ok3 := firstAmount(t); ok3 && v >= 2 {
							depositVal = v
						}
						break
					}
				}
			}
			if depositVal > 0 {
				parts = append(parts, Part{ItemName: "Core Deposit", TotalAmount: round4(depositVal), Quantity: 1})
			}
		}
	}
	return parts
}

// extractPerLineHeuristic is the §4.5.4 fallback: parse_line_item applied
// independently to every body line.
func extractPerLineHeuristic(body []string) []Part {
	var parts []Part
	for _, l := range body {
		if part, ok := ParseLineItem(l, nil); ok {
			parts = append(parts, part)
		}
	}
	return parts
}

// extractWholeDocument is the §4.5.5 last resort: parse_line_item applied
// to every line of the document, header and footer included.
func extractWholeDocument(lines []string) []Part {
	var parts []Part
	for _, l := range lines {
		if part, ok := ParseLineItem(l, nil); ok {
			parts = append(parts, part)
		}
	}
	return parts
}

// ExtractParts runs the five C5 strategies in strict order and returns the
// first non-empty result, plus any warnings the assembler should surface.
func ExtractParts(lines []string, seg Segments) ([]Part, []string) {
	body := lines[seg.HeaderEnd:seg.FooterStart]
	var warnings []string

	parts := extractColumnTable(body)
	if len(parts) == 0 {
		parts = extractMultiLine(body)
	}
	if len(parts) == 0 {
		parts = extractVerticalForm(lines)
	}
	if len(parts) == 0 {
		parts = extractPerLineHeuristic(body)
	}
	if len(parts) == 0 {
		parts = extractWholeDocument(lines)
		if len(parts) > 0 {
			warnings = append(warnings, "header row not found; line items salvaged via whole-document fallback")
		}
	}
	if parts == nil {
		parts = []Part{}
	}

	for _, p := range parts {
		if p.PositionalFallback {
			warnings = append(warnings, "quantity/unit_price math validation pair not found; positional fallback used for item \""+p.ItemName+"\"")
		}
	}
	return parts, warnings
}
