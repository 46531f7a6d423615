package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var dateLabels = map[string]*regexp.Regexp{
	"invoice_date":     regexp.MustCompile(`(?i)\b(?:invoice\s*date|date\s*issued|issued|date)\b[:\s]*`),
	"due_date":         regexp.MustCompile(`(?i)\b(?:due\s*date|payment\s*due|pay\s*by)\b[:\s]*`),
	"transaction_date": regexp.MustCompile(`(?i)\b(?:transaction|sale|purchase|order\s*date)\b[:\s]*`),
}

// dateLabelOrder fixes the precedence among label regexes so a line that
// could match more than one label is only ever claimed by its first match.
var dateLabelOrder = []string{"due_date", "transaction_date", "invoice_date"}

// ExtractedDates holds the three labeled dates spec.md §4.3 names.
type ExtractedDates struct {
	InvoiceDate     string
	DueDate         string
	TransactionDate string
}

// ExtractDates looks up labeled dates across lines and normalizes numeric
// matches to ISO YYYY-MM-DD. Month-name dates are normalized the same way.
// Values that cannot be normalized (no numeric/month-name pattern nearby)
// are left as the empty string.
func ExtractDates(lines []string) ExtractedDates {
	var out ExtractedDates
	for _, line := range lines {
		// dateLabelOrder's precedence is enforced here: the first label
		// pattern to match a line claims it, so invoice_date's own bare
		// "date" fallback alternative never re-claims a "Due Date" or
		// "Transaction Date" line that due_date/transaction_date already
		// matched.
		for _, key := range dateLabelOrder {
			lbl := dateLabels[key]
			loc := lbl.FindStringIndex(line)
			if loc == nil {
				continue
			}
			rest := line[loc[1]:]
			iso, ok := findAndNormalizeDate(rest)
			if !ok {
				break
			}
			switch key {
			case "invoice_date":
				if out.InvoiceDate == "" {
					out.InvoiceDate = iso
				}
			case "due_date":
				if out.DueDate == "" {
					out.DueDate = iso
				}
			case "transaction_date":
				if out.TransactionDate == "" {
					out.TransactionDate = iso
				}
			}
			break
		}
	}
	return out
}

// findAndNormalizeDate finds the first date-shaped token in s and returns
// its ISO YYYY-MM-DD normalization.
func findAndNormalizeDate(s string) (string, bool) {
	if m := DateISORe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if valid(y, mo, d) {
			return isoDate(y, mo, d), true
		}
	}
	if m := DateLongRe.FindStringSubmatch(s); m != nil {
		mo := monthNames[strings.ToLower(m[1][:minInt(3, len(m[1]))])]
		d, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if mo > 0 && valid(y, mo, d) {
			return isoDate(y, mo, d), true
		}
	}
	if m := DateLongRevRe.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo := monthNames[strings.ToLower(m[2][:minInt(3, len(m[2]))])]
		y, _ := strconv.Atoi(m[3])
		if mo > 0 && valid(y, mo, d) {
			return isoDate(y, mo, d), true
		}
	}
	if m := DateDMYRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		y := expandYear(m[3])
		// Ambiguous MM/DD vs DD/MM resolution per spec.md §4.3: a first
		// component over 12 forces day-first, but the international bias is
		// to assume day-first regardless — preserved verbatim from the
		// source behavior (see SPEC_FULL.md / DESIGN.md Open Question 1).
		day, month := a, b
		if valid(y, month, day) {
			return isoDate(y, month, day), true
		}
	}
	return "", false
}

func expandYear(s string) int {
	y, _ := strconv.Atoi(s)
	if len(s) == 2 {
		y += 2000
	}
	return y
}

func valid(y, mo, d int) bool {
	return y >= 1000 && y <= 9999 && mo >= 1 && mo <= 12 && d >= 1 && d <= 31
}

func isoDate(y, mo, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
