package extract

import (
	"regexp"
	"strings"
)

var buyerSectionLabelRe = regexp.MustCompile(`(?i)^\s*(Bill\s*To|Ship\s*To|Customer(?:\s*Name)?|Sold\s*To|Client)\s*[:.]?\s*$`)
var buyerInlineLabelRe = regexp.MustCompile(`(?i)^\s*(Bill\s*To|Customer\s*Name|Ship\s*To|Sold\s*To|Client)\s*[:.]\s*(.+)$`)
var attnPrefixRe = regexp.MustCompile(`(?i)^(Attn|Attention)[:.]\s*`)

// BuildBuyer isolates the buyer block from the document lines and extracts
// a name, address, and contact, per spec.md §4.3.
func BuildBuyer(lines []string) Buyer {
	var buyer Buyer

	for i, line := range lines {
		if m := buyerInlineLabelRe.FindStringSubmatch(line); m != nil {
			name := attnPrefixRe.ReplaceAllString(strings.TrimSpace(m[2]), "")
			if name != "" {
				buyer.Name = ptr(name)
			}
			block := collectFollowing(lines, i+1, 6)
			applyBuyerBlock(&buyer, block)
			return buyer
		}

		if buyerSectionLabelRe.MatchString(line) {
			block := collectFollowing(lines, i+1, 6)
			name := firstMeaningfulLine(block)
			if name != "" {
				buyer.Name = ptr(attnPrefixRe.ReplaceAllString(name, ""))
			}
			applyBuyerBlock(&buyer, block)
			return buyer
		}
	}
	return buyer
}

// collectFollowing returns up to n lines starting at idx, stopping early at
// a blank-ish section break (another bare section label).
func collectFollowing(lines []string, idx, n int) []string {
	var out []string
	for i := idx; i < len(lines) && len(out) < n; i++ {
		if buyerSectionLabelRe.MatchString(lines[i]) {
			break
		}
		out = append(out, lines[i])
	}
	return out
}

func firstMeaningfulLine(lines []string) string {
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t != "" {
			return t
		}
	}
	return ""
}

func applyBuyerBlock(buyer *Buyer, block []string) {
	addr := ParseAddress(block)
	if !addr.IsEmpty() {
		buyer.Address = &addr
	}
	contact := buildContact(strings.Join(block, "\n"))
	if !contact.IsEmpty() {
		buyer.Contact = &contact
	}
}
