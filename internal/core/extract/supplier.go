package extract

import (
	"regexp"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d{8,}`)
var formattedPhoneHintRe = regexp.MustCompile(`[()\-. ]`)

// BuildSupplier extracts phone/email/URL/address/tax info from a header
// text block, using nameHint as the supplier name (typically the first
// non-empty header line), per spec.md §4.3.
func BuildSupplier(nameHint string, headerLines []string, fullText string) Supplier {
	headerBlock := strings.Join(headerLines, "\n")

	s := Supplier{
		Name:    strings.TrimSpace(nameHint),
		Contact: buildContact(headerBlock),
		Address: ParseAddress(headerLines),
	}
	if tax := ExtractTaxInformation(fullText); tax != nil {
		s.TaxInformation = tax
	}
	return s
}

// buildContact picks phone/email/website candidates from a text block. The
// phone preference rule (spec.md §4.3): a formatted candidate — contains
// any of "()-. ", has >=10 digits, and the ORIGINAL source string has no
// run of >=8 consecutive digits — wins over a raw digit run, which prevents
// store IDs and document numbers from being mistaken for phones.
func buildContact(block string) Contact {
	var c Contact

	candidates := PhoneRe.FindAllString(block, -1)
	var best string
	for _, cand := range candidates {
		digits := countDigits(cand)
		if digits < 7 {
			continue
		}
		if USZipPlus4Re.MatchString(strings.TrimSpace(cand)) {
			continue
		}
		if strings.Contains(cand, "\n") {
			continue
		}
		formatted := formattedPhoneHintRe.MatchString(cand) && digits >= 10 && !digitRunRe.MatchString(cand)
		if best == "" || (formatted && !phoneLooksFormatted(best)) {
			best = cand
			if formatted {
				break
			}
		}
	}
	c.Phone = best

	if email := EmailRe.FindString(block); email != "" {
		c.Email = email
	}
	if url := URLRe.FindString(block); url != "" && !strings.Contains(url, "@") {
		c.Website = url
	}
	return c
}

func phoneLooksFormatted(s string) bool {
	return formattedPhoneHintRe.MatchString(s) && countDigits(s) >= 10 && !digitRunRe.MatchString(s)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
