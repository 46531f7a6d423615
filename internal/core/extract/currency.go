package extract

import "regexp"

// currencySignal pairs a regex against a currency's ISO-4217 code and
// display symbol. Order matters: broader matches (bare "$") must come after
// more specific ones (e.g. "A$") or the specific currency would never win,
// per spec.md §4.3.
type currencySignal struct {
	re     *regexp.Regexp
	code   string
	symbol string
}

var currencySignals = []currencySignal{
	{regexp.MustCompile(`A\$|AUD`), "AUD", "A$"},
	{regexp.MustCompile(`C\$|CAD`), "CAD", "C$"},
	{regexp.MustCompile(`NZ\$|NZD`), "NZD", "NZ$"},
	{regexp.MustCompile(`£|GBP`), "GBP", "£"},
	{regexp.MustCompile(`€|EUR`), "EUR", "€"},
	{regexp.MustCompile(`¥|JPY`), "JPY", "¥"},
	{regexp.MustCompile(`(?i)\bINR\b|₹`), "INR", "₹"},
	{regexp.MustCompile(`\$|USD`), "USD", "$"},
}

// DetectCurrency scans text for a currency signal, in the priority order
// above, and returns its ISO-4217 code. It defaults to USD when no signal
// is found, per spec.md §3/§8 property 4.
func DetectCurrency(text string) string {
	for _, sig := range currencySignals {
		if sig.re.MatchString(text) {
			return sig.code
		}
	}
	return "USD"
}
