package extract

import "strings"

// languageKeywords is a keyword heuristic over common business-document
// vocabulary. Checked in table order; the first language whose keyword
// count is non-zero and highest wins, per spec.md §4.3.
// Keywords are chosen to be distinctive against English business-document
// vocabulary: generic words that also happen to be English ("total",
// "date") are deliberately excluded so an English invoice's own "Grand
// Total"/"Invoice Date" lines don't false-positive a non-English detection.
var languageKeywords = map[string][]string{
	"fr": {"facture", "montant", "client", "tva", "numero", "paiement", "adresse", "merci"},
	"de": {"rechnung", "betrag", "datum", "kunde", "mehrwertsteuer", "zahlung", "summe"},
	"es": {"factura", "importe", "fecha", "cliente", "impuesto", "pago", "gracias"},
	"it": {"fattura", "importo", "cliente", "imposta", "pagamento", "totale", "grazie"},
}

// languageOrder fixes the scan order so ties resolve deterministically.
var languageOrder = []string{"fr", "de", "es", "it"}

// DetectLanguage applies a keyword heuristic over the first 800 lowercase
// characters of text and returns a BCP-47 code, defaulting to "en".
func DetectLanguage(text string) string {
	sample := text
	if len(sample) > 800 {
		sample = sample[:800]
	}
	sample = strings.ToLower(sample)

	best := ""
	bestScore := 0
	for _, lang := range languageOrder {
		score := 0
		for _, kw := range languageKeywords[lang] {
			if strings.Contains(sample, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = lang
		}
	}
	if best == "" {
		return "en"
	}
	return best
}
