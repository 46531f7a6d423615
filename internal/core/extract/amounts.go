package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var parenQualifierRe = regexp.MustCompile(`^\s*\([^()]*\)\s*`)

var totalsStopwordsRe = regexp.MustCompile(`(?i)\b(sub\s*total|subtotal|total|tax|gst|vat|shipping|discount|balance|amount\s*due|net\s*amount|gross\s*amount|grand\s*total)\b`)

// ExtractLabeledAmount finds the monetary value associated with labelPattern
// in text, split into non-empty lines. It tries the same-line form first
// (permitting an intermediary parenthesized qualifier like "(8%)"), then a
// multi-line scan: if the label sits alone on its line, look ahead up to 4
// lines for a standalone amount, stopping at any totals keyword. It returns
// (0, false) when no value is found. Never returns a negative amount.
func ExtractLabeledAmount(lines []string, labelPattern *regexp.Regexp) (float64, bool) {
	for i, line := range lines {
		loc := labelPattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := line[loc[1]:]
		rest = parenQualifierRe.ReplaceAllString(rest, "")
		if amt, ok := firstAmount(rest); ok {
			return amt, true
		}

		// Label alone on its line: scan ahead up to 4 lines.
		if strings.TrimSpace(rest) == "" {
			for j := i + 1; j < len(lines) && j <= i+4; j++ {
				if totalsStopwordsRe.MatchString(lines[j]) && !labelPattern.MatchString(lines[j]) {
					break
				}
				if amt, ok := firstAmount(lines[j]); ok {
					return amt, true
				}
			}
		}
	}
	return 0, false
}

// firstAmount extracts and parses the first monetary token in s, stripping
// thousands separators. Returns (0, false) if none is present.
func firstAmount(s string) (float64, bool) {
	m := AmountRe.FindString(s)
	if m == "" {
		m = AmountBareRe.FindString(s)
	}
	if m == "" {
		return 0, false
	}
	neg := strings.Contains(m, "-")
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.':
			return r
		default:
			return -1
		}
	}, m)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	if v < 0 {
		v = 0
	}
	return v, true
}
