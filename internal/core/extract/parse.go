package extract

import "time"

// Parse turns raw OCR text into a canonical Record. It is total on
// well-formed UTF-8: there is no input for which Parse panics or returns an
// error. Missing fields surface as absent/optional, never as zero values or
// empty strings (except where spec'd: grand_total defaults to 0, quantity
// defaults to 1, currency defaults to USD).
//
// Sequence: normalize -> segment -> classify (respecting opts.DocumentType)
// -> build_supplier (merged with tax info from the full text) ->
// build_buyer -> extract_transaction -> extract_parts -> extract_totals ->
// assemble.
func Parse(rawText string, opts Options) Record {
	normalized := Normalize(rawText)
	lines := Lines(normalized)
	seg := Segment(lines)

	headerLines := lines[:seg.HeaderEnd]
	footerLines := lines[seg.FooterStart:]

	docType := opts.DocumentType
	if docType == "" {
		docType = ClassifyDocumentType(normalized)
	}

	language := opts.Language
	if language == "" {
		language = DetectLanguage(normalized)
	}

	supplier := BuildSupplier(firstMeaningfulLine(headerLines), headerLines, normalized)
	buyer := BuildBuyer(lines)

	dates := ExtractDates(lines)
	txn, txnWarnings := ExtractTransaction(lines)
	if dates.InvoiceDate != "" {
		txn.InvoiceDate = ptr(dates.InvoiceDate)
	}
	if dates.DueDate != "" {
		txn.DueDate = ptr(dates.DueDate)
	}
	if dates.TransactionDate != "" {
		txn.TransactionDate = ptr(dates.TransactionDate)
	}
	txn.Currency = DetectCurrency(normalized)

	parts, partWarnings := ExtractParts(lines, seg)
	totals := ExtractTotals(footerLines, lines, parts)

	warnings := make([]string, 0, len(txnWarnings)+len(partWarnings)+1)
	warnings = append(warnings, txnWarnings...)
	warnings = append(warnings, partWarnings...)
	if totals.GrandTotal == 0 {
		warnings = append(warnings, "no grand total found")
	}

	return Record{
		Supplier:    supplier,
		Buyer:       buyer,
		Transaction: txn,
		Parts:       parts,
		Totals:      totals,
		Metadata: Metadata{
			DocumentType:        docType,
			LanguageDetected:    language,
			ExtractionTimestamp: time.Now().UTC(),
			Warnings:            warnings,
		},
		RawText: ptr(rawText),
	}
}
