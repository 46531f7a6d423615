package extract

import "regexp"

// The pattern library (C1): a small, stable set of named, precompiled
// regular expressions reused across every primitive extractor. Compiling
// once here (rather than per call) keeps regex work bounded per spec.md §5,
// and every pattern below is linear-time with no nested quantifiers over
// overlapping alternations.
var (
	// PhoneRe matches international/local phone numbers with mandatory
	// separators (space, tab, '.' or '-'; never a newline, so matches never
	// cross a line). The area code has 2-3 digits and the middle group 3-4,
	// covering "(555) 123-4567" and "(07) 3123 4567".
	PhoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[ \t.-]?)?\(?\d{2,3}\)?[ \t.-]\d{3,4}[ \t.-]\d{4}\b`)

	EmailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	URLRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9\-]+\.[a-z]{2,}(?:/[^\s]*)?\b`)

	DateISORe     = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	DateDMYRe     = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`)
	DateLongRe    = regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(\d{1,2}),?\s+(\d{4})\b`)
	DateLongRevRe = regexp.MustCompile(`(?i)\b(\d{1,2})\.?\s+(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?,?\s+(\d{4})\b`)

	AmountRe     = regexp.MustCompile(`[$£€]\s?-?\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|-?\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?\s?(?:USD|EUR|GBP|CAD|AUD)`)
	AmountBareRe = regexp.MustCompile(`-?\d{1,3}(?:,\d{3})*(?:\.\d{1,4})?`)

	ABNRe  = regexp.MustCompile(`\bABN[:\s]*([\d\s]{11,14})\b`)
	ACNRe  = regexp.MustCompile(`\bACN[:\s]*([\d\s]{9,12})\b`)
	GSTAURe = regexp.MustCompile(`(?i)\bGST\s*(?:No\.?|Number)?[:\s]*([\d\s]{11,14})\b`)
	EINRe  = regexp.MustCompile(`\bEIN[:\s]*(\d{2}-?\d{7})\b`)
	VATRe  = regexp.MustCompile(`(?i)\bVAT\s*(?:No\.?|Number|Reg\.?)?[:\s]*([A-Z]{0,2}\s?[\d\s]{8,12})\b`)
	GSTINRe = regexp.MustCompile(`\b([0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z])\b`)

	SKULabeledRe = regexp.MustCompile(`(?i)\b(?:SKU|PN|MPN|Part\s*#?|Item\s*#?)[:\s]*([A-Za-z0-9][\w\-/.]{2,})`)
	SKUBareRe    = regexp.MustCompile(`\b[0-9A-Za-z]{2,}-[0-9A-Za-z]{2,}-[0-9A-Za-z]{2,}\b`)

	TaxPercentRe = regexp.MustCompile(`\b(\d{1,2}(?:\.\d{1,2})?)\s?%`)

	// AUSuburbStatePostcodeRe matches "City STATE 1234" Australian address
	// lines.
	AUSuburbStatePostcodeRe = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z\s]{1,40})\s+(NSW|VIC|QLD|WA|SA|TAS|ACT|NT)\s+(\d{4})\b`)

	// USCityStateZipRe matches "City, ST 12345(-6789)".
	USCityStateZipRe = regexp.MustCompile(`\b([A-Za-z][A-Za-z\s.'-]{1,40}),\s*([A-Z]{2})\s+(\d{5}(?:-\d{4})?)\b`)
	USZipRe          = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	USZipPlus4Re     = regexp.MustCompile(`^\d{5}-\d{4}$`)

	StreetLineRe = regexp.MustCompile(`^\s*\d+\s+\S.*$`)
)
