package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// The normalizer's OCR-artifact repairs (C2), applied in the fixed order
// spec.md §4.1 requires. Each pattern is compiled once at package init, the
// same way the teacher compiles its normalize-package patterns in
// internal/core/ocr/normalize.go.
var (
	reDollarLI      = regexp.MustCompile(`\$[lI](\d)`)
	reDigitODigit   = regexp.MustCompile(`(\d)[Oo](\d)`)
	reSDollar       = regexp.MustCompile(`(^|\s)S(\d+\.\d{2})`)
	reMultiSpace    = regexp.MustCompile(`[ \t]{2,}`)
	reSplitThousand = regexp.MustCompile(`(\d) (\d{3})([.,]|\b)`)
	reDashes        = regexp.MustCompile(`[\x{2013}\x{2014}]`)
	reZeroWidth     = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)
)

// Normalize repairs common OCR artifacts without altering the line count or
// semantic content of the text, per spec.md §4.1. Calling Normalize on an
// already-normalized string is a no-op (idempotent).
func Normalize(s string) string {
	if s == "" {
		return s
	}
	in := s

	// Fold full-width/compatibility forms before the ASCII-oriented repairs
	// below run; OCR on mixed-script scans sometimes emits full-width digits
	// and punctuation that the dollar/zero repairs would otherwise miss.
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)

	// 1. $l / $I followed by a digit -> $1<digit>
	s = reDollarLI.ReplaceAllString(s, "$$1$1")

	// 2. <digit>O<digit> / <digit>o<digit> -> <digit>0<digit>
	s = reDigitODigit.ReplaceAllString(s, "${1}0$2")

	// 3. whitespace-prefixed S<digits>.<2-digits> -> $<digits>.<2-digits>
	s = reSDollar.ReplaceAllString(s, "${1}$$${2}")

	// 6. en-dash / em-dash -> ASCII hyphen (before whitespace collapsing so
	// a dash surrounded by single spaces is not disturbed by step 4).
	s = reDashes.ReplaceAllString(s, "-")

	// 7. strip zero-width characters.
	s = reZeroWidth.ReplaceAllString(s, "")

	// 4 & 8 operate per line to guarantee the newline count is untouched.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// 4. collapse runs of 2+ spaces/tabs to two spaces.
		line = reMultiSpace.ReplaceAllString(line, "  ")
		// 5. remove an OCR-inserted space inside a monetary value: a digit,
		// a space, then three digits followed by '.', ',', or a word
		// boundary.
		line = reSplitThousand.ReplaceAllString(line, "$1$2$3")
		// 8. trim trailing whitespace.
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	// One repair can expose another ("1O1O1", "S1 234.56"), so passes repeat
	// until one changes nothing; that fixed point makes Normalize idempotent.
	if out != in {
		return Normalize(out)
	}
	return out
}

// Lines splits normalized text into its non-empty lines, preserving order.
// Downstream components operate on this slice rather than raw string
// offsets so cross-line semantics (phone numbers must not span lines, etc.)
// stay intact, per spec.md §9.
func Lines(normalized string) []string {
	raw := strings.Split(normalized, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
